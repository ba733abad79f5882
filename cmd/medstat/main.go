package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"medstat/internal/api"
	"medstat/internal/config"
	"medstat/internal/pkg/logger"
	"medstat/internal/pkg/store"
	"medstat/internal/pkg/store/xpgx"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = logger.Init("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(xpgx.NewPool(pool))

	if err := st.Bootstrap(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
	if err := st.SeedDoctors(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(st, cfg)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.ListenAddr)
	logger.Infof(ctx, "listening on %s", cfg.ListenAddr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

// connect builds the pool, registering decimal codecs so numeric
// columns scan into shopspring values, and pings with backoff so a
// database that is still starting does not kill the service.
func connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	ping := func() error { return pool.Ping(ctx) }
	if err := backoff.Retry(ping, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
