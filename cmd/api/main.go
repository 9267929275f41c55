package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-platform/internal/auth"
	"ecommerce-platform/internal/client"
	"ecommerce-platform/internal/config"
	"ecommerce-platform/internal/logger"
	"ecommerce-platform/internal/server"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	srv := server.NewServer(cfg, log, tokens)

	serverAddr := cfg.HTTP.Address()
	log.Info("Starting HTTP server",
		zap.String("addr", serverAddr),
		zap.String("environment", cfg.Environment.Name),
	)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// API answers 503 until the database is reachable
	go connect(cfg, log, tokens, srv)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

func connect(cfg *config.Config, log *zap.Logger, tokens *auth.TokenManager, srv *server.Server) {
	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		log.Error("Database connection error", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return
	}
	log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	svcs := server.NewServices(db, tokens)
	if cfg.SeedProducts {
		if err := svcs.SeedCatalog(context.Background(), log); err != nil {
			log.Error("Failed to seed products", zap.Error(err))
		}
	}

	srv.Attach(svcs)
}
