package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/formsiq/fieldmap/config"
	"github.com/formsiq/fieldmap/internal/repositories/mappingrun"
	"github.com/formsiq/fieldmap/pkg/acroform"
	"github.com/formsiq/fieldmap/pkg/coercion"
	"github.com/formsiq/fieldmap/pkg/database"
	"github.com/formsiq/fieldmap/pkg/events"
	"github.com/formsiq/fieldmap/pkg/kafka"
	"github.com/formsiq/fieldmap/pkg/knowledge"
	"github.com/formsiq/fieldmap/pkg/mappingtable"
	"github.com/formsiq/fieldmap/pkg/matching"
	"github.com/formsiq/fieldmap/pkg/middleware"
	"github.com/formsiq/fieldmap/pkg/processor"
	"github.com/formsiq/fieldmap/pkg/routes/health"
	mappingroutes "github.com/formsiq/fieldmap/pkg/routes/mapping"
	schemaroutes "github.com/formsiq/fieldmap/pkg/routes/schema"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// Version is set at build time
var Version = "dev"

func main() {
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := ectoenv.BindEnv(cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	tracing.SetTracer(otel.Tracer(cfg.AppName))

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		logger.WithError(err).Error("Failed to create DI container")
		os.Exit(1)
	}

	mustRegister(logger, ectoinject.RegisterInstance[ectologger.Logger](container, logger))
	mustRegister(logger, ectoinject.RegisterInstance[*config.Config](container, cfg))

	tables := knowledge.Default()
	loader := acroform.NewLoader(logger)
	engine := matching.NewEngine(logger, tables, matching.EngineConfig{
		FuzzyCutoff:    cfg.FuzzyCutoff,
		SemanticStrong: cfg.SemanticStrong,
		CategoryBonus:  cfg.CategoryBonus,
	})
	coercer := coercion.NewCoercer(logger, tables, cfg.ConfidenceThreshold)
	reconciler := mappingtable.NewReconciler(logger, cfg.MappingCachePath)
	proc := processor.New(logger, loader, engine, coercer, reconciler)

	mustRegister(logger, ectoinject.RegisterInstance[*acroform.Loader](container, loader))
	mustRegister(logger, ectoinject.RegisterInstance[*processor.Processor](container, proc))

	var db database.DB
	if cfg.DatabaseEnabled {
		db, err = connectDatabase(cfg, logger)
		if err != nil {
			logger.WithError(err).Error("Failed to connect to database")
			os.Exit(1)
		}
		defer db.Close()

		runRepo := mappingrun.NewRepository(db, logger)
		mustRegister(logger, ectoinject.RegisterInstance[*mappingrun.Repository](container, runRepo))
	}

	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
		defer producer.Close()

		emitter := events.NewEmitter(producer, logger)
		mustRegister(logger, ectoinject.RegisterInstance[*events.Emitter](container, emitter))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(echomw.Recover())
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))

	checker := health.NewChecker(db, Version)
	checker.RegisterRoutes(e)
	mappingroutes.Register(e.Group("/api/v1/mappings"))
	schemaroutes.Register(e.Group("/api/v1/schema"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		logger.WithField("port", cfg.Port).Infof("Starting %s on port %d", cfg.AppName, cfg.Port)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server failed")
			os.Exit(1)
		}
	}()

	checker.SetReady(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	checker.SetReady(false)
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Failed to shut down cleanly")
	}
}

func newLogger(cfg *config.Config) (ectologger.Logger, error) {
	var zapLogger *zap.Logger
	var err error
	if cfg.PrettyLogs {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil), nil
}

func connectDatabase(cfg *config.Config, logger ectologger.Logger) (database.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName,
		cfg.DatabasePassword, cfg.DatabaseName, cfg.DatabaseSSLMode,
	)

	var sqlxDB *sqlx.DB
	var err error
	for attempt := 1; attempt <= cfg.DatabaseReconnectRetryCount; attempt++ {
		sqlxDB, err = sqlx.Connect(cfg.DatabaseDriver, dsn)
		if err == nil {
			break
		}
		logger.WithError(err).Warnf("Database connection attempt %d failed", attempt)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	if err != nil {
		return nil, err
	}

	sqlxDB.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	sqlxDB.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	sqlxDB.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	driver, err := migratepg.WithInstance(sqlxDB.DB, &migratepg.Config{})
	if err != nil {
		return nil, err
	}

	migrations := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
	})
	if err := migrations.Migrate(cfg.DatabaseName, driver); err != nil {
		return nil, err
	}

	return database.NewDatabaseInstance(sqlxDB, logger), nil
}

func mustRegister(logger ectologger.Logger, err error) {
	if err != nil {
		logger.WithError(err).Error("Failed to register dependency")
		os.Exit(1)
	}
}
