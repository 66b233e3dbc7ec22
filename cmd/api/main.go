package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/cache"
	"github.com/BruksfildServices01/agendapro/internal/config"
	dbpkg "github.com/BruksfildServices01/agendapro/internal/db"
	"github.com/BruksfildServices01/agendapro/internal/infra/memory"
	"github.com/BruksfildServices01/agendapro/internal/logger"
	"github.com/BruksfildServices01/agendapro/internal/routes"
	"github.com/BruksfildServices01/agendapro/internal/storage"
	"github.com/BruksfildServices01/agendapro/internal/validators"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gin.SetMode(cfg.GinMode)
	if err := validators.Register(); err != nil {
		zl.Fatal("failed to register validators", zap.Error(err))
	}

	var repos routes.Repositories
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		zl.Warn("using in-memory store, data is lost on restart")
		repos = routes.MemoryRepositories(memory.NewStore())
	default:
		db, err := dbpkg.NewDB(cfg, zl)
		if err != nil {
			zl.Fatal("failed to open database", zap.Error(err))
		}
		repos = routes.GormRepositories(db)
	}

	var c cache.Cache = cache.Nop{}
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			zl.Warn("redis unavailable, company cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			c = rc
		}
	}

	ctx := context.Background()
	store, err := storage.NewDriver(ctx, cfg.Storage)
	if err != nil {
		zl.Fatal("failed to init storage", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(repos.Audit), zl)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Dependencies{
		Config:  cfg,
		Log:     zl,
		Repos:   repos,
		Cache:   c,
		Storage: store,
		Audit:   dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}

	dispatcher.Close()
}
