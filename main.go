package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-dashboard/api"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/dataset"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/store"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

const (
	sourceCSV      = "csv"
	sourceMongo    = "mongo"
	sourceSQLite   = "sqlite"
	sourcePostgres = "postgres"
)

var (
	server   *api.Server
	snapshot store.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("dataset.source", sourceCSV)
	viper.SetDefault("dataset.encoding.global", dataset.UTF8)
	viper.SetDefault("dataset.encoding.country", dataset.Latin1)
	viper.SetDefault("dataset.timeout", 2*time.Minute)
	viper.SetDefault("dataset.retries", 3)
	viper.SetDefault("mongo.pool", 10)
	viper.SetDefault("i18n.dir", "i18n")
	viper.SetDefault("i18n.locale", "en")

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// openSource returns the configured dataset source and, for snapshot
// stores, the store itself.
func openSource(ctx context.Context) (dataset.Source, store.Pinger, error) {
	switch source := viper.GetString("dataset.source"); source {
	case sourceCSV:
		return dataset.NewCSVSource(dataset.CSVConfig{
			Global:  viper.GetString("dataset.global"),
			Country: viper.GetString("dataset.country"),
			Encoding: map[schema.TableKind]string{
				schema.Aggregate: viper.GetString("dataset.encoding.global"),
				schema.PerEntity: viper.GetString("dataset.encoding.country"),
			},
			Timeout: viper.GetDuration("dataset.timeout"),
			Retries: viper.GetInt("dataset.retries"),
		}), nil, nil

	case sourceMongo:
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			return nil, nil, fmt.Errorf("create mongo client with error: %w", err)
		}
		if err := mongoClient.Connect(ctx); nil != err {
			return nil, nil, fmt.Errorf("connect mongo database with error: %w", err)
		}
		s := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
		snapshot = s
		return s, s, nil

	case sourceSQLite:
		s, err := store.NewSQLiteStore(viper.GetString("sqlite.path"))
		if err != nil {
			return nil, nil, err
		}
		snapshot = s
		return s, s, nil

	case sourcePostgres:
		s, err := store.NewPostgresStore(ctx, viper.GetString("postgres.conn"))
		if err != nil {
			return nil, nil, err
		}
		snapshot = s
		return s, s, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", dataset.ErrUnsupportedSource, source)
	}
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if snapshot != nil {
			log.Info("Shutting down snapshot store")
			snapshot.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded i18n messages")

	source, pinger, err := openSource(initialCtx)
	if err != nil {
		log.Panic(err)
	}

	global, country, err := dataset.LoadTables(initialCtx, source)
	if err != nil {
		sentry.CaptureException(err)
		log.Panic(err)
	}
	log.WithFields(log.Fields{
		"prefix":    "init",
		"source":    viper.GetString("dataset.source"),
		"global":    global.Len(),
		"country":   country.Len(),
		"countries": len(country.Entities()),
	}).Info("Loaded dataset")

	d := dashboard.New(global, country, utils.NewLocalizer(viper.GetString("i18n.locale")))

	// Init http server
	server = api.NewServer(d, pinger)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
