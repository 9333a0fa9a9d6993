package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultConfigTemplate = `version: 1
inputs:
  - "questions/*.txt"

output:
  dir: %s
  format: json

export:
  duckdb: ""
  xlsx: ""

serve:
  addr: "127.0.0.1:8080"
  allowed_origins:
    - "http://localhost:5173"
  max_body_bytes: 1048576
`

const sampleQuiz = `Q1. What is 2+2?
A. 3
B. 4
C. 5
D. 6
Correct Answer: B
`

// Scaffold writes the default config file and a sample quiz next to the project root.
// An empty outputDir falls back to DefaultOutputDir.
func Scaffold(configPath, outputDir string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if strings.TrimSpace(outputDir) == "" {
		outputDir = DefaultOutputDir
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	questionsDir := filepath.Join(ProjectRootFromConfigPath(configPath), "questions")
	if err := os.MkdirAll(questionsDir, 0o755); err != nil {
		return fmt.Errorf("create questions dir: %w", err)
	}

	samplePath := filepath.Join(questionsDir, "sample.txt")
	if _, err := os.Stat(samplePath); os.IsNotExist(err) {
		if err := os.WriteFile(samplePath, []byte(sampleQuiz), 0o644); err != nil {
			return fmt.Errorf("write sample quiz: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("stat sample quiz: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(fmt.Sprintf(defaultConfigTemplate, strconv.Quote(outputDir))), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
