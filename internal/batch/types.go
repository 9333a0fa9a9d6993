package batch

import (
	"time"

	"quizconv/internal/quiz"
)

// Params configures a batch conversion.
type Params struct {
	BaseDir   string
	Inputs    []string
	OutputDir string
	Format    quiz.Format
	Observer  Observer
}

// FileResult captures the outcome for one input file.
type FileResult struct {
	Input     string        `json:"input"`
	Output    string        `json:"output,omitempty"`
	Questions int           `json:"questions"`
	Error     string        `json:"error,omitempty"`
	Records   []quiz.Record `json:"-"`
}

// Failed reports whether the file could not be converted.
func (r FileResult) Failed() bool {
	return r.Error != ""
}

// Summary aggregates a batch run. It is also written as the run manifest.
type Summary struct {
	RunID          string       `json:"runId"`
	StartedAt      time.Time    `json:"startedAt"`
	FinishedAt     time.Time    `json:"finishedAt"`
	Format         quiz.Format  `json:"format"`
	Files          []FileResult `json:"files"`
	FilesConverted int          `json:"filesConverted"`
	FilesFailed    int          `json:"filesFailed"`
	QuestionsTotal int          `json:"questionsTotal"`
}

// Converted returns the results of files that converted successfully.
func (s Summary) Converted() []FileResult {
	out := make([]FileResult, 0, s.FilesConverted)
	for _, file := range s.Files {
		if !file.Failed() {
			out = append(out, file)
		}
	}
	return out
}

func (s *Summary) add(result FileResult) {
	s.Files = append(s.Files, result)
	if result.Failed() {
		s.FilesFailed++
		return
	}
	s.FilesConverted++
	s.QuestionsTotal += result.Questions
}
