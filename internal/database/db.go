// Package database handles the connection to the relational store and the
// ordered-collection repositories for boards, lists and tasks.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath returns ~/.kanban/kanban.db, creating the directory.
func DefaultSQLitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".kanban")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	return filepath.Join(dir, "kanban.db"), nil
}

// Open connects to the store named by driver ("sqlite" or "pgx"), applies
// connection settings for that dialect and runs migrations.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, 0, err
	}

	if dsn == "" && dialect == SQLite {
		dsn, err = DefaultSQLitePath()
		if err != nil {
			return nil, 0, err
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open database: %w", err)
	}

	if err := configure(ctx, db, dialect); err != nil {
		closeQuietly(db)
		return nil, 0, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, 0, fmt.Errorf("database ping failed: %w", err)
	}

	applied, err := Migrate(ctx, db, dialect)
	if err != nil {
		closeQuietly(db)
		return nil, 0, fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, version := range applied {
		log.WithFields(log.Fields{"version": version, "dialect": dialect.String()}).Debug("applied migration")
	}

	return db, dialect, nil
}

func configure(ctx context.Context, db *sql.DB, dialect Dialect) error {
	switch dialect {
	case SQLite:
		// SQLite benefits from a single writer connection; it also keeps
		// ":memory:" databases on one connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		pragmas := []string{
			// required for ON DELETE CASCADE
			"PRAGMA foreign_keys = ON",
			"PRAGMA journal_mode = WAL",
			"PRAGMA busy_timeout = 5000",
		}
		for _, p := range pragmas {
			if _, err := db.ExecContext(ctx, p); err != nil {
				return fmt.Errorf("failed to apply %q: %w", p, err)
			}
		}
	case Postgres:
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetMaxIdleConns(10)
		db.SetMaxOpenConns(20)
	}
	return nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.WithError(err).Error("error closing db")
	}
}
