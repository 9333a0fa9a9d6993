//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestCLIScenarios runs the command line feature scenarios.
func TestCLIScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "cli.feature")
	suite := godog.TestSuite{
		Name:                "cli",
		ScenarioInitializer: InitializeCLIScenario(t),
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeCLIScenario wires steps for CLI scenarios.
func InitializeCLIScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		state := &cliScenarioState{}
		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			state.reset(t.TempDir())
			return ctx, nil
		})

		ctx.Step(`^a quiz file "([^"]*)" containing:$`, state.givenQuizFile)
		ctx.Step(`^I run "(.*)"$`, state.whenIRun)
		ctx.Step(`^the exit code is (\d+)$`, state.thenExitCode)
		ctx.Step(`^stdout contains "(.*)"$`, state.thenStdoutContains)
		ctx.Step(`^stderr contains "(.*)"$`, state.thenStderrContains)
	}
}

type cliScenarioState struct {
	dir    string
	code   int
	stdout string
	stderr string
}

// reset clears scenario state.
func (s *cliScenarioState) reset(dir string) {
	s.dir = dir
	s.code = -1
	s.stdout = ""
	s.stderr = ""
}

func (s *cliScenarioState) givenQuizFile(name string, doc *godog.DocString) error {
	return os.WriteFile(filepath.Join(s.dir, name), []byte(doc.Content), 0o644)
}

// whenIRun rewrites .txt arguments into the scenario directory.
func (s *cliScenarioState) whenIRun(commandLine string) error {
	args := strings.Fields(commandLine)
	for i, arg := range args {
		if strings.HasSuffix(arg, ".txt") {
			args[i] = filepath.Join(s.dir, arg)
		}
	}
	var stdout, stderr bytes.Buffer
	s.code = Run(args, &stdout, &stderr)
	s.stdout = stdout.String()
	s.stderr = stderr.String()
	return nil
}

func (s *cliScenarioState) thenExitCode(code int) error {
	if s.code != code {
		return fmt.Errorf("expected exit %d, got %d (stderr: %s)", code, s.code, s.stderr)
	}
	return nil
}

func (s *cliScenarioState) thenStdoutContains(text string) error {
	if !strings.Contains(s.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, s.stdout)
	}
	return nil
}

func (s *cliScenarioState) thenStderrContains(text string) error {
	if !strings.Contains(s.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, s.stderr)
	}
	return nil
}
