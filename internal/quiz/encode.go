package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const indent = "  "

// Encode renders records in the requested format.
func Encode(records []Record, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return EncodeJSON(records)
	case FormatYAML:
		return EncodeYAML(records)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// EncodeJSON renders records as a two-space indented JSON array without a
// trailing newline. HTML characters in question text are kept verbatim.
func EncodeJSON(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeYAML renders records as a YAML sequence.
func EncodeYAML(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(len(indent))
	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
