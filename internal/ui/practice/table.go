package practice

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizconv/internal/quiz"
)

// tableStyles returns result table styles.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// resultColumns sizes the question column to the available width.
func resultColumns(width int) []table.Column {
	const fixed = 4 + 8 + 8 + 10 + 10
	questionWidth := max(width-fixed, 16)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Yours", Width: 8},
		{Title: "Answer", Width: 8},
		{Title: "Result", Width: 10},
	}
}

// resultRows converts session results into table rows.
func resultRows(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Results))
	for _, result := range state.Results {
		yours := "-"
		status := "skipped"
		if !result.Skipped {
			yours = quiz.OptionLabel(result.Selected)
			status = "incorrect"
			if result.Correct {
				status = "correct"
			}
		}
		answer := "-"
		if !result.Skipped {
			answer = quiz.OptionLabel(result.Answer)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(result.Index + 1),
			truncate(result.Question, 60),
			yours,
			answer,
			status,
		})
	}
	return rows
}

func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}
