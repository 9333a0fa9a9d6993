package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizconv/internal/batch"
	"quizconv/internal/quiz"
)

var runBatch = batch.Run

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newFlagSet(cmd, stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .quizconv/config.yml)")
		outputDir := flags.String("output-dir", "", "Override output directory")
		formatValue := flags.String("format", "", "Override output format (json|yaml)")
		verbose := flags.Bool("verbose", false, "Print per-file progress to stderr")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors in verbose output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		proj, err := loadProject(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		cfg := proj.Config

		formatName := cfg.Output.Format
		if *formatValue != "" {
			formatName = *formatValue
		}
		format, err := quiz.ParseFormat(formatName)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		outDir := cfg.Output.Dir
		if *outputDir != "" {
			outDir = *outputDir
		}

		params := batch.Params{
			BaseDir:   proj.Root,
			Inputs:    cfg.Inputs,
			OutputDir: proj.resolvePath(outDir),
			Format:    format,
		}
		if *verbose {
			params.Observer = batch.NewVerboseObserver(stderr, *noColor)
		}

		ctx := context.Background()
		summary, err := runBatch(ctx, params)
		for _, file := range summary.Files {
			if file.Failed() {
				fmt.Fprintf(stderr, "Failed %s: %s\n", file.Input, file.Error)
			}
		}
		if err != nil {
			if errors.Is(err, batch.ErrAllFailed) {
				fmt.Fprintf(stderr, "Run failed: no input converted (%d files)\n", summary.FilesFailed)
			} else {
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
			}
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", summary.RunID)
		fmt.Fprintf(stdout, "Converted: %d/%d files, %d questions\n", summary.FilesConverted, len(summary.Files), summary.QuestionsTotal)
		fmt.Fprintf(stdout, "Output: %s\n", params.OutputDir)
		fmt.Fprintf(stdout, "Manifest: %s\n", filepath.Join(params.OutputDir, batch.ManifestFileName))

		converted := summary.Converted()
		sources := make([]exportSource, 0, len(converted))
		for _, file := range converted {
			sources = append(sources, exportSource{Path: file.Input, Records: file.Records})
		}
		duckdbPath := proj.resolvePath(cfg.Export.DuckDB)
		xlsxPath := proj.resolvePath(cfg.Export.XLSX)
		if err := writeExports(ctx, sources, duckdbPath, xlsxPath, stdout); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
