package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeebo/xxh3"

	"github.com/bitmark-inc/covid-dashboard/catalog"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/render"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/table"
)

const formatJSON = "json"

func (s *Server) globalMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": s.dashboard.GlobalMetrics()})
}

func (s *Server) countryMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": s.dashboard.CountryMetrics()})
}

func (s *Server) countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": s.dashboard.Countries()})
}

func (s *Server) rankingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"columns": s.dashboard.RankedColumns(),
		"orders":  s.dashboard.RankOrders(),
	})
}

func (s *Server) relationships(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": s.dashboard.Relationships()})
}

func (s *Server) dateRange(c *gin.Context) {
	var params struct {
		Table string `form:"table" binding:"required"`
		Field string `form:"field" binding:"required"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	r, err := s.dashboard.DateRange(schema.TableKind(params.Table), params.Field)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, r)
}

func (s *Server) globalChart(c *gin.Context) {
	metric := c.Query("metric")
	if metric == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	answer, err := s.dashboard.GlobalChart(metric)
	s.respondChart(c, "global", answer, err)
}

func (s *Server) countryChart(c *gin.Context) {
	metric := c.Query("metric")
	if metric == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	answer, err := s.dashboard.CountryChart(metric, c.Param("country"))
	s.respondChart(c, "country", answer, err)
}

func (s *Server) comparison(c *gin.Context) {
	answer, err := s.dashboard.Comparison(c.Param("country"))
	s.respondChart(c, "comparison", answer, err)
}

func (s *Server) ranking(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	answer, err := s.dashboard.Ranking(c.Query("column"), date, catalog.Order(c.Query("order")))
	s.respondChart(c, "ranking", answer, err)
}

func (s *Server) relationship(c *gin.Context) {
	preset := c.Query("preset")
	if preset == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}

	var scale dashboard.Scale
	if scale.LogX, ok = queryBool(c, "log_x"); !ok {
		return
	}
	if scale.LogY, ok = queryBool(c, "log_y"); !ok {
		return
	}

	answer, err := s.dashboard.Relationship(preset, date, scale)
	s.respondChart(c, "relationship", answer, err)
}

func (s *Server) distribution(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	answer, err := s.dashboard.Distribution(date)
	s.respondChart(c, "distribution", answer, err)
}

// queryDate reads the optional date parameter. A zero time means the view
// default is used.
func queryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}

	date, ok := table.ParseDate(raw)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDate)
		return time.Time{}, false
	}
	return date, true
}

// queryBool reads an optional boolean parameter. Nil means it is absent.
func queryBool(c *gin.Context, key string) (*bool, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		return nil, true
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return nil, false
	}
	return &v, true
}

// respondChart writes answer in the requested format, tagged with a hash
// of the body.
func (s *Server) respondChart(c *gin.Context, view string, answer *dashboard.Chart, err error) {
	defer func() {
		s.metrics.observe(view, answer, c.Writer.Status())
	}()

	if shouldInterupt(err, c) {
		return
	}

	var (
		body        []byte
		contentType string
	)

	format := c.DefaultQuery("format", formatJSON)
	if format == formatJSON {
		body, err = json.Marshal(answer)
		if shouldInterupt(err, c) {
			return
		}
		contentType = "application/json; charset=utf-8"
	} else {
		f, err := render.ParseFormat(format)
		if shouldInterupt(err, c) {
			return
		}

		var buf bytes.Buffer
		if err := render.Render(&buf, answer.Spec, f); shouldInterupt(err, c) {
			return
		}
		body = buf.Bytes()
		contentType = f.ContentType()
	}

	etag := fmt.Sprintf(`"%016x"`, xxh3.Hash(body))
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.AbortWithStatus(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, contentType, body)
}
