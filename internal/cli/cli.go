package cli

import (
	"fmt"
	"io"
)

// Process exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one subcommand in the CLI table.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a subcommand and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizconv <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizconv <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .quizconv/config.yml and a sample quiz", []string{
		"quizconv init [--spec <path>]",
	}, runInit),
	command("validate", "Validate .quizconv/config.yml", []string{
		"quizconv validate [--spec <path>]",
	}, runValidate),
	command("convert", "Convert one quiz file to JSON or YAML", []string{
		"quizconv convert [--format json|yaml] [--output <path>] <quiz.txt>",
	}, runConvert),
	command("run", "Convert every configured input", []string{
		"quizconv run [--spec <path>] [--output-dir <dir>] [--format json|yaml] [--verbose] [--no-color]",
	}, runRun),
	command("export", "Load quiz files into DuckDB or a workbook", []string{
		"quizconv export [--duckdb <db.duckdb>] [--xlsx <book.xlsx>] <quiz.txt>...",
	}, runExport),
	command("preview", "Print quiz files with the correct options marked", []string{
		"quizconv preview [--no-color] <quiz.txt>...",
	}, runPreview),
	command("practice", "Take a quiz interactively in the terminal", []string{
		"quizconv practice [--no-color] <quiz.txt>",
	}, runPractice),
	command("serve", "Serve the conversion HTTP API", []string{
		"quizconv serve [--spec <path>] [--addr <host:port>]",
	}, runServe),
}
