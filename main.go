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

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/andre-portfolio/internal/config"
	"github.com/Zachkp/andre-portfolio/internal/content"
	"github.com/Zachkp/andre-portfolio/internal/logger"
	"github.com/Zachkp/andre-portfolio/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogFormat == "console",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	portfolio, err := content.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := store.Open(ctx, "portfolio")
	if err != nil {
		return err
	}
	defer stats.Close()

	srv, err := newServer(log, portfolio, stats, cfg)
	if err != nil {
		return err
	}
	router, err := newRouter(srv)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Zerolog().Info().Str("addr", httpServer.Addr).Bool("stats", cfg.StatsEnabled).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
