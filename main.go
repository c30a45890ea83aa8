package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "messageboard/docs"
	"messageboard/internal/api"
	"messageboard/internal/config"
	"messageboard/internal/repository"
	"messageboard/internal/service"
)

// store is what main needs beyond service.MessageRepository.
type store interface {
	service.MessageRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// @title       Message Board API
// @version     1.0
// @description Messages collection and static about profile.
// @BasePath    /
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := openStore(cfg)
	if err != nil {
		log.Printf("Failed to initialize %s: %v", cfg.DBDriver, err)
		repo = repository.NewUnavailableRepo(err)
	}
	// A failed first connection is not fatal; requests report store errors.
	go func() {
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			log.Printf("Failed to connect to %s: %v", cfg.DBDriver, err)
			return
		}
		log.Printf("Connected to %s", cfg.DBDriver)
	}()

	var ledger service.MessageLedger
	if cfg.RedisAddr != "" {
		redisLedger := repository.NewRedisLedger(cfg.RedisAddr, cfg.RedisPassword)
		defer redisLedger.Close()
		if err := redisLedger.Ping(ctx); err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
		ledger = redisLedger
	}

	if cfg.TestMode {
		gin.SetMode(gin.TestMode)
	}

	serv := service.NewMessageService(repo, ledger)
	handler := api.NewAPIHandler(serv)
	r := api.NewRouter(handler, api.RouterOptions{PublicDir: cfg.PublicDir, Quiet: cfg.TestMode})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := serve(ctx, server); err != nil {
		log.Printf("Server error: %v", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Close(closeCtx); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	log.Println("Server stopped")
}

func openStore(cfg config.Config) (store, error) {
	switch cfg.DBDriver {
	case "postgres":
		return repository.NewPostgresRepo(cfg.DBURL)
	case "mongo":
		return repository.OpenMongo(cfg.DBURL, cfg.DBName)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// serve runs server until ctx is done or it fails to listen. A listen error is
// returned without shutting down so that main's deferred cleanup still runs.
func serve(ctx context.Context, server *http.Server) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s...", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutdown signal received; shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
