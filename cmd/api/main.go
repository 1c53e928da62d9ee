package main

import (
	"context"
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
	"github.com/feral-file/ff-nft-issuer/internal/api/middleware"
	"github.com/feral-file/ff-nft-issuer/internal/api/server"
	"github.com/feral-file/ff-nft-issuer/internal/config"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/minter"
	"github.com/feral-file/ff-nft-issuer/internal/ownership"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "nft-issuer-api",
		},
		Service: "nft-issuer-api",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File NFT Issuer API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	// Initialize store
	var dataStore store.Store
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.WarnCtx(ctx, "Using the in-memory store, state is lost on restart")
		dataStore = store.NewMemoryStore(clock)
	default:
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}

		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)

		dataStore = store.NewPGStore(db)
	}

	// Wire the issuer
	registryFactory := ownership.NewERC721Factory(clock, jsonAdapter, jcsAdapter)
	issuer := minter.NewMinter(minter.Config{
		AllowSeparatorInURI: cfg.Minter.AllowSeparatorInURI,
		LookupMode:          cfg.Minter.LookupMode,
	}, dataStore, registryFactory)
	if cfg.Minter.AllowSeparatorInURI {
		logger.WarnCtx(ctx, "Token URIs are not validated, a URI containing a newline shifts later records")
	}

	status, err := issuer.CheckLedger(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to check metadata ledger", zap.Error(err))
	}
	if !status.Consistent() {
		logger.WarnCtx(ctx, "Metadata ledger does not line up with minted tokens, scan lookups may return shifted URIs",
			zap.Uint64("total_minted", status.TotalMinted),
			zap.Uint64("records", status.Records),
			zap.Uint64s("empty_records", status.EmptyRecords))
	}

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, issuer)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
