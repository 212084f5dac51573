// Package database manages the PostgreSQL connection pool and schema
// migrations.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kestrelworks/routekit/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// System manages the database connection pool and schema migrations.
type System interface {
	Connection() *sql.DB
	Ping(ctx context.Context) error
	Migrate() error
	MigrateDown() error
	Version() (uint, bool, error)
	Close() error
}

type system struct {
	db     *sql.DB
	cfg    *config.DatabaseConfig
	logger *slog.Logger
}

// New opens the connection pool, applies the configured pool settings, and
// verifies connectivity within the configured timeout.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &system{
		db:     db,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

// Connection returns the shared connection pool.
func (s *system) Connection() *sql.DB {
	return s.db
}

// Ping verifies database connectivity.
func (s *system) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies all pending schema migrations.
func (s *system) Migrate() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			s.logger.Info("schema up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	s.logger.Info("migrations applied")
	return nil
}

// MigrateDown rolls back the most recent migration.
func (s *system) MigrateDown() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}

	s.logger.Info("migration rolled back")
	return nil
}

// Version reports the current migration version and dirty state.
func (s *system) Version() (uint, bool, error) {
	m, err := s.migrator()
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Close releases the connection pool.
func (s *system) Close() error {
	return s.db.Close()
}

func (s *system) migrator() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	driver, err := migratepgx.WithInstance(s.db, &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("open migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, s.cfg.Name, driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}
