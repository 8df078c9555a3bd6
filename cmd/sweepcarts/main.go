// Command sweepcarts scans the cart cache and deletes entries that no
// longer decode as valid carts. Run it after schema changes to the cached
// cart shape, or on a schedule as hygiene.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"royalbike/internal/handler/middleware"
	"royalbike/internal/infra/cartcache"
	"royalbike/internal/pkg/config"
)

const sweepTimeout = 5 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, cleanup, err := cartcache.Connect(cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	deleted, err := cartcache.New(client).SweepCorrupted(ctx)
	if err != nil {
		logger.Error("cart sweep failed", "error", err, "deleted", deleted)
		os.Exit(1)
	}

	logger.Info("cart sweep finished", "deleted", deleted)
}
