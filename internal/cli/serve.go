package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/plotgrid/plotgrid/internal/api"
	"github.com/plotgrid/plotgrid/pkg/cache"
	"github.com/plotgrid/plotgrid/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		redis   cache.RedisConfig
		scope   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the plotgrid HTTP API server",
		Long: `Run the plotgrid HTTP API server.

The server exposes the normalization pipeline over HTTP:

  POST /v1/normalize  project an inline dataset into a layout
  POST /v1/render     render an inline dataset or layout to artifacts
  GET  /healthz       liveness probe

By default results are cached in the local file cache. With --redis-addr a
shared Redis cache is used instead, which lets multiple server instances
share layouts and artifacts. --cache-scope prefixes all cache keys so
several deployments can share one Redis without collisions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, redis, scope)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redis.Addr, "redis-addr", "", "Redis address (host:port); empty uses the file cache")
	cmd.Flags().StringVar(&redis.Password, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&redis.DB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&scope, "cache-scope", "", "prefix for all cache keys")

	return cmd
}

// runServe builds the runner and serves the API until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool, redis cache.RedisConfig, scope string) error {
	store, err := c.newServeCache(ctx, noCache, redis)
	if err != nil {
		return err
	}

	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope)
	}

	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.New(runner, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	c.Logger.Info("server listening", "addr", addr)
	printInfo("Serving on %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	c.Logger.Info("server stopped")
	return nil
}

// newServeCache picks the cache backend for the server.
func (c *CLI) newServeCache(ctx context.Context, noCache bool, redis cache.RedisConfig) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redis.Addr != "" {
		store, err := cache.NewRedisCache(ctx, redis)
		if err != nil {
			return nil, fmt.Errorf("connect to Redis %s: %w", redis.Addr, err)
		}
		c.Logger.Info("using Redis cache", "addr", redis.Addr, "db", redis.DB)
		return store, nil
	}
	return newCache(false)
}
