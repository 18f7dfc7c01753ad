package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/olyamironova/limit-order-book/internal/adapter/sysclock"
	"github.com/olyamironova/limit-order-book/internal/api/http"
	"github.com/olyamironova/limit-order-book/internal/config"
	"github.com/olyamironova/limit-order-book/internal/core"
	"github.com/olyamironova/limit-order-book/internal/feed"
	"github.com/olyamironova/limit-order-book/internal/logging"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	clock := sysclock.New()
	book := core.NewLimitOrderBook(clock, logger)
	broadcaster := feed.NewBroadcaster(cfg.FeedBuffer, logger)

	server := http.NewHTTPServer(book, clock, broadcaster, logger)

	logger.Info("starting HTTP server", zap.String("addr", cfg.Addr))
	if err := server.Run(cfg.Addr); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
