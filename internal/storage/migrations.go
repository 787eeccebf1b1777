package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: transactions and category registry",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					description TEXT NOT NULL,
					amount REAL NOT NULL CHECK (amount >= 0),
					category TEXT NOT NULL DEFAULT '',
					date DATETIME NOT NULL,
					due_date DATETIME NOT NULL,
					type TEXT NOT NULL,
					status TEXT NOT NULL DEFAULT 'pending',
					budget_class TEXT NOT NULL DEFAULT 'other',
					recurring INTEGER NOT NULL DEFAULT 0,
					priority INTEGER NOT NULL DEFAULT 2,
					period_half INTEGER NOT NULL DEFAULT 1,
					installments INTEGER NOT NULL DEFAULT 1,
					installment_index INTEGER NOT NULL DEFAULT 1,
					fixed_expense INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_status ON transactions(status)`,
				`CREATE INDEX idx_transactions_type ON transactions(type)`,

				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL UNIQUE,
					type TEXT NOT NULL,
					budget_class TEXT NOT NULL DEFAULT 'other',
					is_active INTEGER NOT NULL DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed default category registry",
		Up: func(tx *sql.Tx) error {
			var count int
			if err := tx.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
				return fmt.Errorf("failed to count categories: %w", err)
			}
			if count > 0 {
				return nil
			}

			seed := []struct {
				name        string
				txnType     string
				budgetClass string
			}{
				{"Housing", "expense", "necessity"},
				{"Groceries", "expense", "necessity"},
				{"Transport", "expense", "necessity"},
				{"Health", "expense", "necessity"},
				{"Education", "expense", "necessity"},
				{"Utilities", "expense", "necessity"},
				{"Insurance", "expense", "necessity"},
				{"Leisure", "expense", "want"},
				{"Restaurants", "expense", "want"},
				{"Shopping", "expense", "want"},
				{"Entertainment", "expense", "want"},
				{"Travel", "expense", "want"},
				{"Gifts", "expense", "want"},
				{"Subscriptions", "expense", "want"},
				{"Emergency Fund", "expense", "savings"},
				{"Retirement", "expense", "savings"},
				{"Objectives", "expense", "savings"},
				{"Other", "expense", "other"},
				{"Salary", "income", "necessity"},
				{"Freelance", "income", "necessity"},
				{"Refunds", "income", "other"},
				{"Other Income", "income", "other"},
				{"Fixed Income", "investment", "savings"},
				{"Stocks", "investment", "savings"},
				{"Funds", "investment", "savings"},
			}

			stmt, err := tx.Prepare(`INSERT INTO categories (name, type, budget_class) VALUES (?, ?, ?)`)
			if err != nil {
				return fmt.Errorf("failed to prepare seed statement: %w", err)
			}
			defer func() { _ = stmt.Close() }()

			for _, cat := range seed {
				if _, err := stmt.Exec(cat.name, cat.txnType, cat.budgetClass); err != nil {
					return fmt.Errorf("failed to seed category %q: %w", cat.name, err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add goals table",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS goals (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					target_amount REAL NOT NULL CHECK (target_amount > 0),
					current_amount REAL NOT NULL DEFAULT 0,
					deadline DATETIME,
					category TEXT NOT NULL DEFAULT '',
					status TEXT NOT NULL DEFAULT 'active',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_goals_status ON goals(status)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending migrations to bring the database to the
// expected schema version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
