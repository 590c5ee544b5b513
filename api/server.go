package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-dashboard/logmodule"
	"github.com/bitmark-inc/covid-dashboard/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	dashboard Dashboard

	// snapshot store, nil when the dataset is read from CSV
	pinger store.Pinger

	metrics *metrics
}

// NewServer new instance of server
func NewServer(d Dashboard, pinger store.Pinger) *Server {
	return &Server{
		dashboard: d,
		pinger:    pinger,
		metrics:   newMetrics(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)
	apiRoute.GET("/ranges", s.dateRange)

	globalRoute := apiRoute.Group("/global")
	{
		globalRoute.GET("/metrics", s.globalMetrics)
		globalRoute.GET("/charts", s.globalChart)
	}

	// a static segment cannot sit beside :country
	apiRoute.GET("/country/metrics", s.countryMetrics)

	countryRoute := apiRoute.Group("/countries")
	{
		countryRoute.GET("", s.countries)
		countryRoute.GET("/:country/charts", s.countryChart)
		countryRoute.GET("/:country/comparison", s.comparison)
	}

	rankingRoute := apiRoute.Group("/rankings")
	{
		rankingRoute.GET("", s.ranking)
		rankingRoute.GET("/options", s.rankingOptions)
	}

	relationshipRoute := apiRoute.Group("/relationships")
	{
		relationshipRoute.GET("", s.relationships)
		relationshipRoute.GET("/charts", s.relationship)
	}

	apiRoute.GET("/distributions/hdi", s.distribution)

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.GET("", s.metrics.handler())

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	code, resp := errorFor(err)
	if code >= http.StatusInternalServerError {
		log.Error(err)
	}
	abortWithEncoding(c, code, resp, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	if s.pinger != nil {
		err := s.pinger.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
				"source":  viper.GetString("dataset.source"),
			},
			"system_version": "COVID-19 Dashboard 0.1",
			"pages":          s.dashboard.PageDescriptions(),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
