package batch

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleRun
	styleMetrics
	styleError
)

// VerboseObserver writes one diagnostic line per batch event.
type VerboseObserver struct {
	writer  io.Writer
	palette verbosePalette
}

// NewVerboseObserver builds an observer writing to w. Colors are used only
// when w is a terminal and noColor is false.
func NewVerboseObserver(w io.Writer, noColor bool) *VerboseObserver {
	return &VerboseObserver{writer: w, palette: paletteFor(w, noColor)}
}

func (o *VerboseObserver) OnRunStart(runID string, inputs []string) {
	o.log(styleRun, "run %s: %d input(s)", runID, len(inputs))
}

func (o *VerboseObserver) OnFileStart(input string) {
	o.log(styleDefault, "convert %s", input)
}

func (o *VerboseObserver) OnFileDone(result FileResult) {
	if result.Failed() {
		o.log(styleError, "failed %s: %s", result.Input, result.Error)
		return
	}
	o.log(styleDefault, "wrote %s (%d questions)", result.Output, result.Questions)
}

func (o *VerboseObserver) OnRunEnd(summary Summary) {
	o.log(styleMetrics, "run %s done: converted=%d failed=%d questions=%d elapsed=%s",
		summary.RunID, summary.FilesConverted, summary.FilesFailed, summary.QuestionsTotal,
		summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
}

func (o *VerboseObserver) log(style verboseStyle, format string, args ...any) {
	if o == nil || o.writer == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(o.writer, "%s %s\n", o.palette.prefix(verbosePrefix), o.palette.apply(style, line))
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

// shouldUseStyling honors NO_COLOR, TERM=dumb and CLICOLOR=0 before probing for a TTY.
func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleRun:
		return ansiBold + ansiBlue + text + ansiReset
	case styleMetrics:
		return ansiBold + ansiGreen + text + ansiReset
	case styleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
