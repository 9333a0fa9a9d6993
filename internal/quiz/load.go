package quiz

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding indicates the input is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("quiz text is not valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseFile reads a UTF-8 quiz file and parses it.
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Parse(text), nil
}

// ParseReader reads all of r and parses it as UTF-8 quiz text.
func ParseReader(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read quiz text: %w", err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// ConvertFile parses the quiz file at path and returns the JSON document.
func ConvertFile(path string) (string, error) {
	records, err := ParseFile(path)
	if err != nil {
		return "", err
	}
	data, err := EncodeJSON(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
