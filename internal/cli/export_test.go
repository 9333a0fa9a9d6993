package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"quizconv/internal/duckdb"
	"quizconv/internal/testutil"
)

// TestExportCommandDuckDB verifies records land in DuckDB and re-imports are reused.
func TestExportCommandDuckDB(t *testing.T) {
	dir := t.TempDir()
	quizPath := writeFile(t, filepath.Join(dir, "quiz.txt"), sampleQuiz)
	dbPath := filepath.Join(dir, "db", "quiz.duckdb")

	code, stdout, stderr := runCLI("export", "--duckdb", dbPath, quizPath)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "DuckDB: imported") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	code, stdout, _ = runCLI("export", "--duckdb", dbPath, quizPath)
	if code != ExitOK || !strings.Contains(stdout, "already imported") {
		t.Fatalf("expected reuse on second export, got %d %q", code, stdout)
	}

	ctx := testutil.Context(t, 0)
	db, err := duckdb.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quiz_questions").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 questions, got %d", count)
	}
}

// TestExportCommandUsage verifies a destination and an input are required.
func TestExportCommandUsage(t *testing.T) {
	if code, _, stderr := runCLI("export", "quiz.txt"); code != ExitUsage || !strings.Contains(stderr, "--duckdb or --xlsx") {
		t.Fatalf("expected missing destination usage, got %d %q", code, stderr)
	}
	if code, _, stderr := runCLI("export", "--xlsx", "book.xlsx"); code != ExitUsage || !strings.Contains(stderr, "Missing <quiz.txt>") {
		t.Fatalf("expected missing input usage, got %d %q", code, stderr)
	}
}
