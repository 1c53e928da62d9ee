package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-nft-issuer/internal/adapter"
	"github.com/feral-file/ff-nft-issuer/internal/config"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/providers/jetstream"
	"github.com/feral-file/ff-nft-issuer/internal/relay"
	"github.com/feral-file/ff-nft-issuer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventRelayConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "nft-issuer-event-relay",
		},
		Service: "nft-issuer-event-relay",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Relay")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:             cfg.NATS.URL,
		StreamName:      cfg.NATS.StreamName,
		SubjectPrefix:   cfg.NATS.SubjectPrefix,
		MaxReconnects:   cfg.NATS.MaxReconnects,
		ReconnectWait:   cfg.NATS.ReconnectWait,
		ConnectionName:  cfg.NATS.ConnectionName,
		DuplicateWindow: cfg.NATS.DuplicateWindow,
		CreateStream:    cfg.NATS.CreateStream,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create publisher", zap.Error(err))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	eventRelay := relay.NewRelay(dataStore, publisher, relay.Config{
		ConsumerName:   cfg.Relay.ConsumerName,
		BatchSize:      cfg.Relay.BatchSize,
		PollInterval:   cfg.Relay.PollInterval,
		WorkerPoolSize: cfg.Relay.Worker.WorkerPoolSize,
		Backoff: relay.BackoffConfig{
			InitialInterval: cfg.Relay.Backoff.InitialInterval,
			MaxInterval:     cfg.Relay.Backoff.MaxInterval,
			MaxElapsedTime:  cfg.Relay.Backoff.MaxElapsedTime,
		},
	}, jsonAdapter, clock)
	defer eventRelay.Close()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := eventRelay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "relay"))
		cancel()
	}

	// Give the in-flight batch time to finish
	time.Sleep(time.Second)

	logger.Info("Event Relay stopped")
}
