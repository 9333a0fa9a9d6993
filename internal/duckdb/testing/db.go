package duckdbtesting

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"quizconv/internal/duckdb"
	"quizconv/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open creates a DuckDB file under the test's temp dir with the schema applied.
func Open(t testing.TB) (*sql.DB, string) {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	path := filepath.Join(t.TempDir(), "quiz.duckdb")
	conn, err := duckdb.Open(ctx, path)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn, path
}

// QueryInt returns a single integer value from the database.
func QueryInt(t testing.TB, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}
