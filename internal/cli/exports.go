package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"quizconv/internal/duckdb"
	"quizconv/internal/quiz"
	"quizconv/internal/xlsx"
)

// exportSource pairs a quiz file with its parsed records.
type exportSource struct {
	Path    string
	Records []quiz.Record
}

// writeExports loads sources into DuckDB and writes the workbook when the
// respective paths are set.
func writeExports(ctx context.Context, sources []exportSource, duckdbPath, xlsxPath string, stdout io.Writer) error {
	if duckdbPath != "" {
		if err := exportDuckDB(ctx, sources, duckdbPath, stdout); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		var all []quiz.Record
		for _, source := range sources {
			all = append(all, source.Records...)
		}
		if err := xlsx.Write(xlsxPath, all); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Workbook: %s (%d questions)\n", xlsxPath, len(all))
	}
	return nil
}

func exportDuckDB(ctx context.Context, sources []exportSource, path string, stdout io.Writer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create duckdb dir: %w", err)
	}
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	for _, source := range sources {
		result, err := duckdb.ImportRecords(ctx, db, source.Path, source.Records)
		if err != nil {
			return fmt.Errorf("import %s: %w", source.Path, err)
		}
		if result.Created {
			fmt.Fprintf(stdout, "DuckDB: imported %s as %s (%d questions)\n", source.Path, result.ImportID, len(source.Records))
		} else {
			fmt.Fprintf(stdout, "DuckDB: %s already imported as %s\n", source.Path, result.ImportID)
		}
	}
	return nil
}
