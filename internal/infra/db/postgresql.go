// Package db owns the PostgreSQL connection the repositories run on.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hamsacorp/expense-backend/config"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// Postgres holds the gorm handle with its pool configured from config.
type Postgres struct {
	conn *gorm.DB
}

// Connect opens the database, applies the pool limits and verifies the
// server is reachable before handing the connection back.
func Connect(cfg *config.DatabaseConfig) (*Postgres, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Connected to postgres",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Postgres{conn: conn}, nil
}

// Gorm exposes the underlying gorm handle for the repositories.
func (p *Postgres) Gorm() *gorm.DB {
	return p.conn
}

// Ping reports whether the database currently answers.
func (p *Postgres) Ping() bool {
	sqlDB, err := p.conn.DB()
	if err != nil {
		slog.Error("Database ping failed", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("Database ping failed", "error", err)
		return false
	}
	return true
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	sqlDB, err := p.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Database connection closed")
	return nil
}

// Migrate runs gorm auto-migration for the given models.
func (p *Postgres) Migrate(models ...any) error {
	if err := p.conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}
