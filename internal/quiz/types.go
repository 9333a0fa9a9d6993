package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a single converted question.
type Record struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	AnswerIndex int      `json:"answerIndex" yaml:"answerIndex"`
}

// Format names an output encoding for records.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extension returns the file extension used when writing the format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// ParseFormat resolves a user supplied format name. Empty means JSON.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json|yaml)", value)
	}
}

// OptionLabel returns the display label for the option at index: A, B, ...
// Z, then the 1-based number for anything past Z.
func OptionLabel(index int) string {
	if index >= 0 && index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}

// CorrectOption returns the text at AnswerIndex, or false when the record
// has no option at that position.
func (r Record) CorrectOption() (string, bool) {
	if r.AnswerIndex < 0 || r.AnswerIndex >= len(r.Options) {
		return "", false
	}
	return r.Options[r.AnswerIndex], true
}
