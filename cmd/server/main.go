package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/city-weather/config"
	"ulascansenturk/city-weather/internal/api/v1/handlers"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/middleware"
	"ulascansenturk/city-weather/internal/providers"
	"ulascansenturk/city-weather/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(conf)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var lookupLog lookuplog.Repository
	if conf.LookupLogEnabled {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		lookupLog = lookuplog.NewRepository(db)
		logger.Info().Str("host", conf.DBHost).Msg("lookup log enabled")
	}

	geocoder := providers.NewGeocoder(providers.ClientConfig{
		BaseURL:   conf.GeocodeURL,
		UserAgent: conf.UserAgent,
		Timeout:   conf.GeocodeTimeout,
	})
	forecaster := providers.NewForecaster(providers.ClientConfig{
		BaseURL:   conf.ForecastURL,
		UserAgent: conf.UserAgent,
		Timeout:   conf.ForecastTimeout,
	})

	lookupService := service.NewLookupService(geocoder, forecaster, lookupLog)

	handler := handlers.NewWeatherHandler(lookupService, conf.HTTPTimeoutDuration())
	router := handlers.NewRouter(handler)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           middleware.Logging(logger)(router),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		shutdownErr := httpServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func newLogger(conf *config.Config) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	if conf.Debug {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			Level(zerolog.DebugLevel).
			With().
			Str("service_name", conf.ServiceName).
			Timestamp().
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := lookuplog.Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go shutdownOnSignal(ctx, sig, shutdownDuration, cancelCtx, callback)
}

// shutdownOnSignal blocks until sig fires, then hands callback a context
// bounded by timeout. Overrunning the timeout panics.
func shutdownOnSignal(ctx context.Context, sig <-chan os.Signal, timeout time.Duration, cancelCtx context.CancelFunc, callback func(context.Context)) {
	<-sig

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)

	go func() {
		<-shutdownCtx.Done()

		if shutdownCtx.Err() == context.DeadlineExceeded {
			panic("graceful shutdown timed out.. forcing exit.")
		}
	}()

	callback(shutdownCtx)

	cancel()
	cancelCtx()
}
