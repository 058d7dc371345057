package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/bono/internal/config"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/migrations"
	"go.uber.org/zap"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func InitDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if err := RunMigrations(cfg.DatabaseURI); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Log.Info("Successfully connected to the database")
	return db, nil
}

func RunMigrations(dsn string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		logger.Log.Error("failed to create migrate instance", zap.Error(err))
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func(m *migrate.Migrate) {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Log.Error("failed to close migrate instance", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Log.Info("Migrations completed successfully")
	return nil
}
