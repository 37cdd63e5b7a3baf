package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huytd/quicksearch/api"
	"github.com/huytd/quicksearch/config"
	"github.com/huytd/quicksearch/reader"
	"github.com/huytd/quicksearch/search"
)

func main() {
	// =========
	// Profiling
	// =========
	go func() {
		log.Println(http.ListenAndServe(":6060", nil))
	}()

	// =========
	// Config
	// =========
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	proxy, err := cfg.Proxy()
	if err != nil {
		log.Fatalf("Failed to parse proxy URL: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Search engine
	// =========
	var engine search.SearchEngine
	switch cfg.SearchEngine {
	case config.EngineSerpApi:
		engine = search.NewSerpApiSearchEngine(cfg.SerpApiKey, cfg.RequestTimeout, proxy)
	default:
		engine = search.NewDuckDuckGoSearchEngine(cfg.SearchURL, cfg.UserAgent, cfg.RequestTimeout, proxy)
	}

	// =========
	// Page reader
	// =========
	pages := reader.NewClient(cfg.UserAgent, cfg.RequestTimeout, proxy, logger)

	// =========
	// HTTP server
	// =========
	srv := api.NewServer(engine, pages, logger, cfg.AppPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
