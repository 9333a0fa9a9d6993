package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizconv/internal/config"
)

// project is a loaded quizconv config together with the directory its
// relative inputs and output paths resolve against.
type project struct {
	ConfigPath string
	Root       string
	Config     config.Config
}

// resolvePath returns value relative to the project root, or "" when unset.
func (p project) resolvePath(value string) string {
	return config.ResolvePath(p.Root, value)
}

// locateConfig returns the absolute path named by --spec, or searches upward
// from the working directory when the flag is empty.
func locateConfig(specFlag string) (string, error) {
	value := strings.TrimSpace(specFlag)
	if value == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve config path %q: %w", value, err)
	}
	return abs, nil
}

// loadProject locates, loads and validates the quizconv config.
func loadProject(specFlag string) (project, error) {
	path, err := locateConfig(specFlag)
	if err != nil {
		return project{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return project{}, err
	}
	return project{
		ConfigPath: path,
		Root:       config.ProjectRootFromConfigPath(path),
		Config:     cfg,
	}, nil
}
