package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"quizconv/internal/quiz"
	"quizconv/internal/ui/practice"
)

// runPracticeSession is a test seam for the interactive UI.
var runPracticeSession = practice.Run

// practiceInput allows tests to override the practice key input.
var practiceInput io.Reader = os.Stdin

// runPractice builds the handler for the practice command.
func runPractice(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "Expected exactly one <quiz.txt>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "Practice needs an interactive terminal; use \"quizconv preview\" instead.")
			return ExitError
		}

		path := flags.Arg(0)
		records, err := quiz.ParseFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Practice failed: %v\n", err)
			return ExitError
		}

		state, err := runPracticeSession(context.Background(), records, practiceInput, stdout, practice.Options{
			NoColor: !useColor(*noColor, stdout),
			Title:   filepath.Base(path),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Practice failed: %v\n", err)
			return ExitError
		}
		correct, answered := state.Score()
		fmt.Fprintf(stdout, "Score: %d/%d\n", correct, answered)
		return ExitOK
	}
}
