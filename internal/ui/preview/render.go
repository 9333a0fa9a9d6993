// Package preview renders converted quiz records for terminal review.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizconv/internal/quiz"
)

// Options configures preview rendering.
type Options struct {
	NoColor bool
	// Title is printed above the questions with a question count when set.
	Title string
}

const (
	colorTitle    = lipgloss.Color("33")
	colorQuestion = lipgloss.Color("252")
	colorCorrect  = lipgloss.Color("42")
	colorMuted    = lipgloss.Color("242")
)

// Render lays out records as numbered questions with lettered options. The
// option at answerIndex is marked with an asterisk.
func Render(records []quiz.Record, opts Options) string {
	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(stylize(fmt.Sprintf("%s (%s)", opts.Title, countLabel(len(records))), opts.NoColor, colorTitle, true))
		b.WriteString("\n\n")
	}
	if len(records) == 0 {
		b.WriteString(stylize("(no questions)", opts.NoColor, colorMuted, false))
		b.WriteString("\n")
		return b.String()
	}
	for i, record := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderQuestion(i, record, opts.NoColor))
	}
	return b.String()
}

func renderQuestion(index int, record quiz.Record, noColor bool) string {
	var b strings.Builder
	b.WriteString(stylize(fmt.Sprintf("Q%d. %s", index+1, record.Question), noColor, colorQuestion, true))
	b.WriteString("\n")
	if len(record.Options) == 0 {
		b.WriteString("   ")
		b.WriteString(stylize("(no options)", noColor, colorMuted, false))
		b.WriteString("\n")
		return b.String()
	}
	for i, option := range record.Options {
		line := fmt.Sprintf("%s. %s", quiz.OptionLabel(i), option)
		if i == record.AnswerIndex {
			b.WriteString(" * ")
			b.WriteString(stylize(line, noColor, colorCorrect, false))
		} else {
			b.WriteString("   ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func countLabel(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
