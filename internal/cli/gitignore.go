package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ignoreOutputDir makes sure .gitignore at the project root excludes the
// converted output folder. It returns the entry and whether the file changed.
func ignoreOutputDir(projectRoot, outputDir string) (string, bool, error) {
	entry, err := outputDirPattern(projectRoot, outputDir)
	if err != nil {
		return "", false, err
	}

	path := filepath.Join(projectRoot, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("read .gitignore: %w", err)
	}
	if ignoresDir(string(existing), entry) {
		return entry, false, nil
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", false, fmt.Errorf("write .gitignore: %w", err)
	}
	return entry, true, nil
}

// outputDirPattern turns an output folder into a directory pattern such as
// "quiz-json/". Folders outside the project root cannot be ignored.
func outputDirPattern(projectRoot, outputDir string) (string, error) {
	if strings.TrimSpace(outputDir) == "" {
		return "", errors.New("output dir is required")
	}
	rel := filepath.Clean(outputDir)
	if filepath.IsAbs(rel) {
		var err error
		if rel, err = filepath.Rel(projectRoot, rel); err != nil {
			return "", fmt.Errorf("resolve output dir: %w", err)
		}
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("output dir %q is outside the project root", outputDir)
	}
	return filepath.ToSlash(rel) + "/", nil
}

// ignoresDir reports whether content already lists the directory, with or
// without leading and trailing slashes.
func ignoresDir(content, entry string) bool {
	want := strings.Trim(entry, "/")
	for _, line := range strings.Split(content, "\n") {
		if strings.Trim(strings.TrimSpace(line), "/") == want {
			return true
		}
	}
	return false
}
