package cli

import (
	"context"
	"fmt"
	"io"

	"quizconv/internal/quiz"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		duckdbPath := flags.String("duckdb", "", "DuckDB file to load records into")
		xlsxPath := flags.String("xlsx", "", "Workbook to write")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *duckdbPath == "" && *xlsxPath == "" {
			fmt.Fprintln(stderr, "Missing --duckdb or --xlsx")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "Missing <quiz.txt>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		sources := make([]exportSource, 0, flags.NArg())
		for _, path := range flags.Args() {
			records, err := quiz.ParseFile(path)
			if err != nil {
				fmt.Fprintf(stderr, "Export failed: %v\n", err)
				return ExitError
			}
			sources = append(sources, exportSource{Path: path, Records: records})
		}
		if err := writeExports(context.Background(), sources, *duckdbPath, *xlsxPath, stdout); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
