// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/Abidimam7/leadgen/internal/infra/database"
)

// New returns a migrated in-memory SQLite connection closed at test cleanup.
func New(t testing.TB) *database.Conn {
	t.Helper()

	conn, err := database.NewDBConnection("sqlite", ":memory:", database.PoolConfig{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := database.Migrate(context.Background(), conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
