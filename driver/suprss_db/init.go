package suprss_db

import (
	"context"
	"fmt"
	"os"

	"suprss/config"
	"suprss/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBConnection opens the pgx pool. Connection parameters come from the
// environment; a local .env file is honored for development.
func InitDBConnection(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.SafeInfo("no .env file found, relying on environment", "error", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connectionString())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.Database.ConnectionTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.SafeInfo("connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func connectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_USER", "suprss"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "suprss"),
		envOr("DB_SSL_MODE", "disable"),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
