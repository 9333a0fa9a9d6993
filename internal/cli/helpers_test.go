package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"quizconv/internal/config"
)

const sampleQuiz = "Q1. What is 2+2?\nA. 3\nB. 4\nCorrect Answer: B\nQ2. Capital of France?\nA. Paris\nB. Rome\nCorrect Answer: A\n"

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// writeProject lays out a project with a config and one quiz file.
func writeProject(t *testing.T, configBody string) (root, specPath string) {
	t.Helper()
	t.Setenv(config.EnvServeAddr, "")
	t.Setenv(config.EnvAllowedOrigins, "")
	root = t.TempDir()
	writeFile(t, filepath.Join(root, "questions", "math.txt"), sampleQuiz)
	specPath = writeFile(t, config.ConfigPath(root), configBody)
	return root, specPath
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}
