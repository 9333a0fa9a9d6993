package xlsx

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"quizconv/internal/quiz"
)

const sample = "Q1. What is 2+2?\nA. 3\nB. 4\nC. 5\nCorrect Answer: B\nQ2. Pick one\nA. only\nQ3. No options\n"

// TestBuildLaysOutRows verifies the header row and one row per question.
func TestBuildLaysOutRows(t *testing.T) {
	f, err := Build(quiz.Parse(sample))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	if list := f.GetSheetList(); len(list) != 1 || list[0] != SheetName {
		t.Fatalf("unexpected sheets: %v", list)
	}
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	wantHeader := "#|Question|Option A|Option B|Option C|Answer Index|Answer"
	if got := strings.Join(rows[0], "|"); got != wantHeader {
		t.Fatalf("unexpected header: %s", got)
	}
	if got := strings.Join(rows[1], "|"); got != "1|What is 2+2?|3|4|5|1|B" {
		t.Fatalf("unexpected first row: %s", got)
	}
	if rows[2][2] != "only" || rows[2][6] != "A" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
	// A question without options has no answer letter.
	if len(rows[3]) > 6 && rows[3][6] != "" {
		t.Fatalf("expected empty answer for question without options: %v", rows[3])
	}
}

// TestWriteRoundTrip verifies saved and streamed workbooks reopen.
func TestWriteRoundTrip(t *testing.T) {
	records := quiz.Parse(sample)
	path := filepath.Join(t.TempDir(), "nested", "quiz.xlsx")
	if err := Write(path, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	value, err := f.GetCellValue(SheetName, "B2")
	if err != nil || value != "What is 2+2?" {
		t.Fatalf("unexpected B2 %q: %v", value, err)
	}

	var buf bytes.Buffer
	if err := WriteTo(&buf, records); err != nil {
		t.Fatalf("write to: %v", err)
	}
	streamed, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}
	defer streamed.Close()
	rows, _ := streamed.GetRows(SheetName)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
}

// TestHeadersWithoutOptions verifies an all-empty export still has fixed columns.
func TestHeadersWithoutOptions(t *testing.T) {
	if got := strings.Join(Headers(0), "|"); got != "#|Question|Answer Index|Answer" {
		t.Fatalf("unexpected headers: %s", got)
	}
}
