// Package main provides the SmartDiet plan engine API server
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	appplan "github.com/smartdiet/v1/internal/application/plan"
	"github.com/smartdiet/v1/internal/infrastructure/config"
	"github.com/smartdiet/v1/internal/infrastructure/http/apiserver"
	"github.com/smartdiet/v1/internal/infrastructure/monitoring"
	gormrepo "github.com/smartdiet/v1/internal/infrastructure/persistence/gorm"
	"github.com/smartdiet/v1/internal/infrastructure/persistence/memory"
	"github.com/smartdiet/v1/internal/infrastructure/persistence/postgres"
	"github.com/smartdiet/v1/internal/infrastructure/persistence/sqlite"
	"github.com/smartdiet/v1/internal/infrastructure/security"
	"github.com/smartdiet/v1/internal/ports/outbound"
	"github.com/smartdiet/v1/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	metrics := monitoring.NewMetrics(zapLogger)

	repo, err := newRepository(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to set up plan store", zap.Error(err))
	}

	redisClient := security.NewRedisClient(cfg)
	authService := security.NewAuthService(cfg, zapLogger, redisClient)
	planService := appplan.NewPlanService(repo, metrics, zapLogger)

	server := apiserver.NewAPIServer(cfg, zapLogger, planService, authService, metrics)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("API server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// newRepository selects the plan store backend from configuration.
func newRepository(cfg *config.Config, zapLogger *zap.Logger) (outbound.PlanRepository, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgres.Connect(cfg, zapLogger)
		if err != nil {
			return nil, err
		}
		return gormrepo.NewPlanRepository(db), nil
	case "memory":
		return memory.NewPlanRepository(), nil
	default:
		logLevel := gormlogger.Warn
		if cfg.App.Debug {
			logLevel = gormlogger.Info
		}
		db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
		if err != nil {
			return nil, err
		}
		return gormrepo.NewPlanRepository(db), nil
	}
}
