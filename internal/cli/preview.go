package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"quizconv/internal/quiz"
	"quizconv/internal/ui/preview"
)

// runPreview builds the handler for the preview command.
func runPreview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "Missing <quiz.txt>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		opts := preview.Options{NoColor: !useColor(*noColor, stdout)}
		for i, path := range flags.Args() {
			records, err := quiz.ParseFile(path)
			if err != nil {
				fmt.Fprintf(stderr, "Preview failed: %v\n", err)
				return ExitError
			}
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			opts.Title = filepath.Base(path)
			fmt.Fprint(stdout, preview.Render(records, opts))
		}
		return ExitOK
	}
}
