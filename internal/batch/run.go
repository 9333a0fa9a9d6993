package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"quizconv/internal/quiz"
)

// ErrAllFailed is returned when no input could be converted.
var ErrAllFailed = errors.New("no input converted successfully")

// Run converts every input and writes one output file per input plus a
// manifest. A file that fails is recorded in the summary and the run moves
// on; the returned error is non-nil only for setup failures, cancellation,
// or when every file failed.
func Run(ctx context.Context, params Params) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("batch: context is nil")
	}
	if params.OutputDir == "" {
		return Summary{}, fmt.Errorf("output directory is required")
	}
	format := params.Format
	if format == "" {
		format = quiz.FormatJSON
	}
	observer := params.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	inputs, err := ResolveInputs(params.BaseDir, params.Inputs)
	if err != nil {
		return Summary{}, err
	}
	if len(inputs) == 0 {
		return Summary{}, fmt.Errorf("no inputs to convert")
	}
	if err := os.MkdirAll(params.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	summary := Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Format:    format,
	}
	observer.OnRunStart(summary.RunID, inputs)

	namer := newOutputNamer(params.OutputDir, format)
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		observer.OnFileStart(input)
		result := convertOne(input, namer, format)
		summary.add(result)
		observer.OnFileDone(result)
	}

	summary.FinishedAt = time.Now().UTC()
	if err := writeManifest(params.OutputDir, summary); err != nil {
		return summary, err
	}
	observer.OnRunEnd(summary)
	if summary.FilesConverted == 0 {
		return summary, ErrAllFailed
	}
	return summary, nil
}

func convertOne(input string, namer *outputNamer, format quiz.Format) FileResult {
	result := FileResult{Input: input}
	records, err := quiz.ParseFile(input)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	output := namer.next(input)
	if err := writeRecords(output, records, format); err != nil {
		result.Error = err.Error()
		return result
	}
	result.Output = output
	result.Questions = len(records)
	result.Records = records
	return result
}
