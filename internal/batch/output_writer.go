package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"quizconv/internal/quiz"
)

// ManifestFileName is the run summary written next to the converted files.
const ManifestFileName = "manifest.json"

// outputNamer assigns unique output file names within one run.
type outputNamer struct {
	dir    string
	format quiz.Format
	used   map[string]struct{}
}

func newOutputNamer(dir string, format quiz.Format) *outputNamer {
	return &outputNamer{
		dir:    dir,
		format: format,
		used:   map[string]struct{}{ManifestFileName: {}},
	}
}

// next returns <dir>/<input base><ext>, adding -2, -3, ... on collisions.
func (n *outputNamer) next(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	ext := n.format.Extension()
	name := base + ext
	for i := 2; ; i++ {
		if _, taken := n.used[strings.ToLower(name)]; !taken {
			break
		}
		name = base + "-" + strconv.Itoa(i) + ext
	}
	n.used[strings.ToLower(name)] = struct{}{}
	return filepath.Join(n.dir, name)
}

// writeRecords encodes records and writes them to path.
func writeRecords(path string, records []quiz.Record, format quiz.Format) error {
	data, err := quiz.Encode(records, format)
	if err != nil {
		return err
	}
	if format == quiz.FormatJSON {
		data = append(data, '\n')
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeManifest writes the run summary as pretty JSON.
func writeManifest(outputDir string, summary Summary) error {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(outputDir, ManifestFileName)
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ManifestFileName, err)
	}
	return nil
}
