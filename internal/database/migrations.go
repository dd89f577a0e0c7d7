package database

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	version string
	sqlite  string
	pg      string
}

// migrations are applied in order and recorded in schema_migrations.
var migrations = []migration{
	{
		version: "001_boards_lists_tasks",
		sqlite: `
		CREATE TABLE IF NOT EXISTS boards (
			board_id INTEGER PRIMARY KEY AUTOINCREMENT,
			boardName TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS lists (
			list_id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id INTEGER NOT NULL,
			listName TEXT NOT NULL,
			list_order INTEGER NOT NULL DEFAULT 0 CHECK (list_order >= 0),
			FOREIGN KEY (board_id) REFERENCES boards(board_id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_lists_board_order ON lists(board_id, list_order);

		CREATE TABLE IF NOT EXISTS tasks (
			task_id INTEGER PRIMARY KEY AUTOINCREMENT,
			list_id INTEGER NOT NULL,
			taskName TEXT NOT NULL,
			assignedTo TEXT,
			dueDate TEXT,
			task_order INTEGER NOT NULL DEFAULT 0 CHECK (task_order >= 0),
			FOREIGN KEY (list_id) REFERENCES lists(list_id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_list_order ON tasks(list_id, task_order);
		`,
		pg: `
		CREATE TABLE IF NOT EXISTS boards (
			board_id BIGSERIAL PRIMARY KEY,
			boardName TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS lists (
			list_id BIGSERIAL PRIMARY KEY,
			board_id BIGINT NOT NULL REFERENCES boards(board_id) ON DELETE CASCADE,
			listName TEXT NOT NULL,
			list_order INTEGER NOT NULL DEFAULT 0 CHECK (list_order >= 0)
		);

		CREATE INDEX IF NOT EXISTS idx_lists_board_order ON lists(board_id, list_order);

		CREATE TABLE IF NOT EXISTS tasks (
			task_id BIGSERIAL PRIMARY KEY,
			list_id BIGINT NOT NULL REFERENCES lists(list_id) ON DELETE CASCADE,
			taskName TEXT NOT NULL,
			assignedTo TEXT,
			dueDate TEXT,
			task_order INTEGER NOT NULL DEFAULT 0 CHECK (task_order >= 0)
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_list_order ON tasks(list_id, task_order);
		`,
	},
}

// Migrate creates the schema for dialect, skipping versions already applied,
// and returns the versions it applied.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) ([]string, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	for _, m := range migrations {
		var done int
		err := db.QueryRowContext(ctx,
			dialect.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`),
			m.version,
		).Scan(&done)
		if err != nil {
			return nil, fmt.Errorf("check migration %s: %w", m.version, err)
		}
		if done > 0 {
			continue
		}

		stmt := m.sqlite
		if dialect == Postgres {
			stmt = m.pg
		}

		err = withTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("execute migration %s: %w", m.version, err)
			}
			if _, err := tx.ExecContext(ctx,
				dialect.Rebind(`INSERT INTO schema_migrations (version) VALUES (?)`),
				m.version,
			); err != nil {
				return fmt.Errorf("record migration %s: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		applied = append(applied, m.version)
	}
	return applied, nil
}
