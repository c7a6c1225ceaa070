package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"voucher-management/internal/core/config"
	"voucher-management/internal/core/database"
	"voucher-management/internal/core/logger"
	"voucher-management/internal/core/server"
	"voucher-management/internal/repo"
	"voucher-management/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	l, cleanup := logger.New(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		},
	})
	defer cleanup()
	undo := logger.RedirectStdLog(l)
	defer undo()

	repos := mustOpenStore(cfg, l)
	defer func() {
		if err := repos.Close(); err != nil {
			l.Warn("store close", zap.Error(err))
		}
	}()
	l.Info("store ready", zap.String("driver", cfg.Store.Driver))

	r := router.NewAPIEngine(l, repos)

	srvOpt := server.Options{
		Host:         cfg.App.HTTP.Host,
		Port:         cfg.App.HTTP.Port,
		ReadTimeout:  time.Duration(cfg.App.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.App.HTTP.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.App.HTTP.IdleTimeoutSec) * time.Second,
	}
	srv := server.BuildServer(srvOpt, r)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + strconv.Itoa(cfg.App.HTTP.Port)
	l.Info("voucher api starting",
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, srv, srvOpt.ShutdownTimeout, l); err != nil {
		l.Error("voucher api FAILED", zap.Error(err))
		return
	}
	l.Info("voucher api stopped gracefully")
}

func mustOpenStore(cfg *config.Config, l *zap.Logger) *repo.Repositories {
	repos, err := repo.Open(repo.Options{
		Driver:       cfg.Store.Driver,
		CustomerPath: cfg.Store.File.CustomerPath,
		VoucherPath:  cfg.Store.File.VoucherPath,
		DB: database.Opts{
			Driver:             cfg.DB.Driver,
			DSN:                cfg.DB.DSN,
			MaxOpenConns:       cfg.DB.MaxOpenConns,
			MaxIdleConns:       cfg.DB.MaxIdleConns,
			ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
			LogLevel:           cfg.DB.LogLevel,
		},
		AutoMigrate:   cfg.DB.AutoMigrate,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		RedisPrefix:   cfg.Redis.KeyPrefix,
	}, l)
	if err != nil {
		l.Fatal("store open", zap.Error(err))
	}
	return repos
}
