// Package xlsx exports converted quiz records as an Excel workbook.
package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"quizconv/internal/quiz"
)

// SheetName is the worksheet holding the exported questions.
const SheetName = "Questions"

// Headers returns the header row for a workbook whose widest question has
// optionCount options.
func Headers(optionCount int) []string {
	headers := []string{"#", "Question"}
	for i := 0; i < optionCount; i++ {
		headers = append(headers, "Option "+quiz.OptionLabel(i))
	}
	return append(headers, "Answer Index", "Answer")
}

// Build lays out records in a single worksheet, one row per question.
func Build(records []quiz.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	optionCount := 0
	for _, record := range records {
		optionCount = max(optionCount, len(record.Options))
	}
	headers := Headers(optionCount)
	for i, header := range headers {
		if err := setCell(f, i+1, 1, header); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	for i, record := range records {
		row := i + 2
		values := make([]any, 0, len(headers))
		values = append(values, i+1, record.Question)
		for col := 0; col < optionCount; col++ {
			if col < len(record.Options) {
				values = append(values, record.Options[col])
			} else {
				values = append(values, "")
			}
		}
		answer := ""
		if _, ok := record.CorrectOption(); ok {
			answer = quiz.OptionLabel(record.AnswerIndex)
		}
		values = append(values, record.AnswerIndex, answer)
		for col, value := range values {
			if err := setCell(f, col+1, row, value); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetColWidth(SheetName, "B", "B", 48)
	if optionCount > 0 {
		endOption, _ := excelize.ColumnNumberToName(optionCount + 2)
		_ = f.SetColWidth(SheetName, "C", endOption, 24)
	}
	if err := f.AutoFilter(SheetName, "A1:"+lastCol+"1", nil); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set autofilter: %w", err)
	}
	return f, nil
}

// WriteTo builds the workbook and streams it to w.
func WriteTo(w io.Writer, records []quiz.Record) error {
	f, err := Build(records)
	if err != nil {
		return err
	}
	defer f.Close()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Write builds the workbook and saves it to path, creating parent directories.
func Write(path string, records []quiz.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create xlsx dir: %w", err)
	}
	f, err := Build(records)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return nil
}
