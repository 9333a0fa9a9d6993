package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quizconv/internal/config"
)

const quizExt = ".txt"

// ResolveInputs expands files, directories and glob patterns relative to
// baseDir into a sorted, de-duplicated list of quiz files. Directories
// contribute their top-level *.txt files. A pattern that matches nothing is
// an error.
func ResolveInputs(baseDir string, patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		resolved := config.ResolvePath(baseDir, pattern)
		if config.HasGlob(pattern) {
			matches, err := filepath.Glob(resolved)
			if err != nil {
				return nil, fmt.Errorf("expand %q: %w", pattern, err)
			}
			count := 0
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil || info.IsDir() {
					continue
				}
				add(match)
				count++
			}
			if count == 0 {
				return nil, fmt.Errorf("pattern %q matched no files", pattern)
			}
			continue
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return nil, fmt.Errorf("stat input %q: %w", pattern, err)
		}
		if !info.IsDir() {
			add(resolved)
			continue
		}
		entries, err := os.ReadDir(resolved)
		if err != nil {
			return nil, fmt.Errorf("read input dir %q: %w", pattern, err)
		}
		count := 0
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), quizExt) {
				continue
			}
			add(filepath.Join(resolved, entry.Name()))
			count++
		}
		if count == 0 {
			return nil, fmt.Errorf("directory %q contains no %s files", pattern, quizExt)
		}
	}
	sort.Strings(files)
	return files, nil
}
