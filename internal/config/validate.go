package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizconv/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for correctness and referenced files.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	if len(cfg.Inputs) == 0 {
		add("inputs", "must include at least one entry")
	}
	for i, input := range cfg.Inputs {
		field := fmt.Sprintf("inputs[%d]", i)
		if input == "" {
			add(field, "is required")
			continue
		}
		if HasGlob(input) {
			if _, err := filepath.Glob(ResolvePath(baseDir, input)); err != nil {
				add(field, fmt.Sprintf("invalid pattern %q", input))
			}
			continue
		}
		if _, err := os.Stat(ResolvePath(baseDir, input)); err != nil {
			add(field, fmt.Sprintf("path %q not found", input))
		}
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		add("output.dir", "is required")
	}
	if _, err := quiz.ParseFormat(cfg.Output.Format); err != nil {
		add("output.format", err.Error())
	}

	if strings.TrimSpace(cfg.Serve.Addr) == "" {
		add("serve.addr", "is required")
	}
	if cfg.Serve.MaxBodyBytes < 0 {
		add("serve.max_body_bytes", "must be > 0")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
