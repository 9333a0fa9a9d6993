package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"quizconv/internal/quiz"
)

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		formatValue := flags.String("format", "json", "Output format (json|yaml)")
		outputPath := flags.String("output", "", "Write to this file instead of stdout")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "Expected exactly one <quiz.txt>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		format, err := quiz.ParseFormat(*formatValue)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		records, err := quiz.ParseFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}
		payload, err := quiz.Encode(records, format)
		if err != nil {
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}
		if format == quiz.FormatJSON {
			payload = append(payload, '\n')
		}

		if *outputPath == "" {
			_, _ = stdout.Write(payload)
			return ExitOK
		}
		if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
			fmt.Fprintf(stderr, "Convert failed: create output dir: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
			fmt.Fprintf(stderr, "Convert failed: write output: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s (%d questions)\n", *outputPath, len(records))
		return ExitOK
	}
}
