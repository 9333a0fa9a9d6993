package batch

// Observer receives batch lifecycle events for logging.
type Observer interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, inputs []string)
	// OnFileStart signals that an input is about to be converted.
	OnFileStart(input string)
	// OnFileDone delivers the outcome for an input.
	OnFileDone(result FileResult)
	// OnRunEnd signals run completion.
	OnRunEnd(summary Summary)
}

type nopObserver struct{}

func (nopObserver) OnRunStart(string, []string) {}
func (nopObserver) OnFileStart(string)          {}
func (nopObserver) OnFileDone(FileResult)       {}
func (nopObserver) OnRunEnd(Summary)            {}
