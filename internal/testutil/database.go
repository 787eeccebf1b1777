// Package testutil provides test fixtures for the centavo project.
package testutil

import (
	"context"
	"testing"

	"github.com/centavohq/centavo/internal/storage"
)

// SetupTestDB creates a new in-memory test database with migrations (and
// the default category seed) applied. It is cleaned up with the test.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return store
}
