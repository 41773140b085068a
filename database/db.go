package database

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phuslu/log"
)

var Pool *pgxpool.Pool

// ErrNotFound is returned when a row does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

func Connect(databaseURL string) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db parse config error")
	}

	// Prefer simple protocol for broader compatibility (e.g., proxies).
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	// Prefer IPv4 at DNS resolution time: filter to A records only.
	cfg.ConnConfig.Config.LookupFunc = func(ctx context.Context, host string) ([]string, error) {
		ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(ips))
		for _, ip := range ips {
			if v4 := ip.IP.To4(); v4 != nil {
				out = append(out, v4.String())
			}
		}
		if len(out) == 0 {
			return []string{host}, nil
		}
		return out, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping error")
	}
	Pool = pool
	log.Info().Str("host", cfg.ConnConfig.Host).Msg("database connected")
}

func Close() {
	if Pool != nil {
		Pool.Close()
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
