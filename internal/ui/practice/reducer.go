package practice

// ActionKind identifies a user action.
type ActionKind int

const (
	ActionMoveUp ActionKind = iota
	ActionMoveDown
	// ActionSelect moves the cursor to Action.Index.
	ActionSelect
	ActionSubmit
	ActionNext
	ActionQuit
)

// Action is a single input to Reduce.
type Action struct {
	Kind  ActionKind
	Index int
}

// Reduce applies an action to the session state.
func Reduce(state State, action Action) State {
	if state.Phase == PhaseDone {
		return state
	}
	if action.Kind == ActionQuit {
		state.Phase = PhaseDone
		state.Quit = true
		return state
	}
	record, ok := state.CurrentRecord()
	if !ok {
		state.Phase = PhaseDone
		return state
	}

	switch state.Phase {
	case PhaseAsking:
		last := len(record.Options) - 1
		switch action.Kind {
		case ActionMoveUp:
			if state.Cursor > 0 {
				state.Cursor--
			}
		case ActionMoveDown:
			if state.Cursor < last {
				state.Cursor++
			}
		case ActionSelect:
			if action.Index >= 0 && action.Index <= last {
				state.Cursor = action.Index
			}
		case ActionSubmit:
			state.Results = appendResult(state.Results, Result{
				Index:    state.Current,
				Question: record.Question,
				Selected: state.Cursor,
				Answer:   record.AnswerIndex,
				Correct:  state.Cursor == record.AnswerIndex,
			})
			state.Phase = PhaseAnswered
		}
	case PhaseAnswered:
		if action.Kind == ActionNext || action.Kind == ActionSubmit {
			state = advanceTo(state, state.Current+1)
		}
	}
	return state
}

// advanceTo moves to the first question at or after index that has options,
// recording skipped results for the ones without.
func advanceTo(state State, index int) State {
	state.Cursor = 0
	for index < len(state.Records) {
		record := state.Records[index]
		if len(record.Options) > 0 {
			state.Current = index
			state.Phase = PhaseAsking
			return state
		}
		state.Results = appendResult(state.Results, Result{
			Index:    index,
			Question: record.Question,
			Selected: -1,
			Answer:   record.AnswerIndex,
			Skipped:  true,
		})
		index++
	}
	state.Current = len(state.Records)
	state.Phase = PhaseDone
	return state
}

// appendResult copies before appending so earlier states stay untouched.
func appendResult(results []Result, result Result) []Result {
	next := make([]Result, len(results), len(results)+1)
	copy(next, results)
	return append(next, result)
}
