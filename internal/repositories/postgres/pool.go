package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pool, checks it with a ping and makes sure the schema
// exists.
func Connect(ctx context.Context, cfg models.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error initializing schema: %w", err)
	}

	log.Printf("Connected to PostgreSQL at %s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
	return pool, nil
}

// Migrate creates the restaurants table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS restaurants (
            seq           BIGSERIAL,
            id            TEXT PRIMARY KEY,
            name          TEXT NOT NULL,
            city          TEXT NOT NULL,
            country       TEXT NOT NULL,
            cuisine       TEXT NOT NULL,
            rating        DOUBLE PRECISION NOT NULL,
            reviews_count INTEGER NOT NULL DEFAULT 0,
            price_range   TEXT,
            latitude      DOUBLE PRECISION NOT NULL,
            longitude     DOUBLE PRECISION NOT NULL,
            address       TEXT,
            phone         TEXT
        )`)
	return err
}
