// Package practice runs an interactive quiz session in the terminal.
package practice

import "quizconv/internal/quiz"

// Phase identifies where a session is in the question loop.
type Phase int

const (
	// PhaseAsking waits for the user to pick an option.
	PhaseAsking Phase = iota
	// PhaseAnswered shows feedback for the submitted option.
	PhaseAnswered
	// PhaseDone shows the final results.
	PhaseDone
)

// Result records the outcome for one question.
type Result struct {
	Index    int
	Question string
	Selected int
	Answer   int
	Correct  bool
	Skipped  bool
}

// State captures a practice session.
type State struct {
	Records []quiz.Record
	Current int
	Cursor  int
	Phase   Phase
	Results []Result
	Quit    bool
}

// NewState starts a session at the first answerable question.
func NewState(records []quiz.Record) State {
	state := State{Records: records}
	return advanceTo(state, 0)
}

// CurrentRecord returns the question being asked, if any.
func (s State) CurrentRecord() (quiz.Record, bool) {
	if s.Phase == PhaseDone || s.Current < 0 || s.Current >= len(s.Records) {
		return quiz.Record{}, false
	}
	return s.Records[s.Current], true
}

// LastResult returns the most recent result.
func (s State) LastResult() (Result, bool) {
	if len(s.Results) == 0 {
		return Result{}, false
	}
	return s.Results[len(s.Results)-1], true
}

// Score returns correct and answered counts. Skipped questions are excluded.
func (s State) Score() (correct, answered int) {
	for _, result := range s.Results {
		if result.Skipped {
			continue
		}
		answered++
		if result.Correct {
			correct++
		}
	}
	return correct, answered
}
