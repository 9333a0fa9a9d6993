package practice

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizconv/internal/quiz"
)

// Options configures the practice UI.
type Options struct {
	NoColor bool
	Title   string
}

// Model drives a practice session with Bubble Tea.
type Model struct {
	state   State
	keys    keyMap
	results table.Model
	opts    Options
}

// NewModel constructs a practice model for records.
func NewModel(records []quiz.Record, opts Options) Model {
	t := table.New(
		table.WithColumns(resultColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
		table.WithWidth(80),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	m := Model{state: NewState(records), keys: defaultKeyMap(), results: t, opts: opts}
	m.results.SetRows(resultRows(m.state))
	return m
}

// State returns the current session state.
func (m Model) State() State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies key presses through Reduce.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.results.SetWidth(typed.Width)
		m.results.SetColumns(resultColumns(typed.Width))
		m.results.SetHeight(max(typed.Height-6, 3))
		return m, nil
	case tea.KeyMsg:
		if m.state.Phase == PhaseDone {
			if typed.String() == "q" || key.Matches(typed, m.keys.Submit) || key.Matches(typed, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		action, ok := actionForKey(m.keys, typed.String(), func(b key.Binding) bool { return key.Matches(typed, b) }, m.state.Phase)
		if !ok {
			return m, nil
		}
		m.state = Reduce(m.state, action)
		if m.state.Phase == PhaseDone {
			m.results.SetRows(resultRows(m.state))
			if m.state.Quit {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the current question or the results screen.
func (m Model) View() string {
	if m.state.Phase == PhaseDone {
		return m.viewResults()
	}
	record, _ := m.state.CurrentRecord()
	var b strings.Builder
	header := fmt.Sprintf("Question %d of %d", m.state.Current+1, len(m.state.Records))
	if m.opts.Title != "" {
		header = m.opts.Title + " | " + header
	}
	b.WriteString(stylize(header, m.opts.NoColor, lipgloss.Color("33")))
	b.WriteString("\n\n")
	b.WriteString(record.Question)
	b.WriteString("\n\n")

	last, _ := m.state.LastResult()
	answered := m.state.Phase == PhaseAnswered
	for i, option := range record.Options {
		cursor := "  "
		if i == m.state.Cursor {
			cursor = "> "
		}
		line := cursor + quiz.OptionLabel(i) + ". " + option
		switch {
		case answered && i == record.AnswerIndex:
			line = stylize(line, m.opts.NoColor, lipgloss.Color("42"))
		case answered && i == last.Selected:
			line = stylize(line, m.opts.NoColor, lipgloss.Color("196"))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if answered {
		if last.Correct {
			b.WriteString(stylize("Correct!", m.opts.NoColor, lipgloss.Color("42")))
		} else {
			b.WriteString(stylize("Incorrect. Answer: "+quiz.OptionLabel(record.AnswerIndex), m.opts.NoColor, lipgloss.Color("196")))
		}
		b.WriteString("\n")
	}
	b.WriteString(stylize(m.keys.help(), m.opts.NoColor, lipgloss.Color("242")))
	return b.String()
}

func (m Model) viewResults() string {
	correct, answered := m.state.Score()
	line := fmt.Sprintf("Score: %d/%d", correct, answered)
	if m.state.Quit {
		line += " (quit early)"
	}
	footer := stylize("enter/q to exit", m.opts.NoColor, lipgloss.Color("242"))
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(line, m.opts.NoColor, lipgloss.Color("33")),
		m.results.View(),
		footer,
	)
}

// Run starts an interactive session and returns the final state.
func Run(ctx context.Context, records []quiz.Record, in io.Reader, out io.Writer, opts Options) (State, error) {
	model := NewModel(records, opts)
	if model.state.Phase == PhaseDone {
		return model.state, nil
	}
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out)}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return model.state, fmt.Errorf("practice ui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.state, nil
	}
	return model.state, nil
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
