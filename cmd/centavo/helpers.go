package main

import (
	"context"
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/service"
	"github.com/centavohq/centavo/internal/storage"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadRegistry fetches the active categories and builds the classification
// registry used to derive budget classes.
func loadRegistry(ctx context.Context, store service.Storage) (*ledger.Registry, error) {
	categories, err := store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return ledger.NewRegistry(categories), nil
}

// parseMonth parses a "YYYY-MM" flag value. An empty value means the month
// containing now.
func parseMonth(value string, now time.Time) (int, time.Month, error) {
	if value == "" {
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}
	return parsed.Year(), parsed.Month(), nil
}

// parseDate parses a "YYYY-MM-DD" flag value. An empty value yields the
// zero time so callers can apply their own default.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return parsed, nil
}
