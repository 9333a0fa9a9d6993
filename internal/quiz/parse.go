package quiz

import (
	"regexp"
	"strings"
)

var (
	questionPattern = regexp.MustCompile(`^Q\d+\.\s+(.*)`)
	optionPattern   = regexp.MustCompile(`^([A-D])\.\s+(.*)`)
	answerPattern   = regexp.MustCompile(`^Correct Answer:\s+([A-D])`)
)

// draft is the question currently being assembled. letters maps an option
// label to its position in record.Options and never leaves this file.
type draft struct {
	record  Record
	letters map[string]int
}

func newDraft(question string) *draft {
	return &draft{
		record: Record{
			Question: strings.TrimSpace(question),
			Options:  []string{},
		},
		letters: make(map[string]int),
	}
}

// addOption appends the option text. A repeated letter points at the newest
// option while both texts stay in the list.
func (d *draft) addOption(letter, text string) {
	d.record.Options = append(d.record.Options, text)
	d.letters[letter] = len(d.record.Options) - 1
}

// setAnswer resolves the answer letter. A letter with no option resets the
// index to 0, even after an earlier answer line resolved.
func (d *draft) setAnswer(letter string) {
	index, ok := d.letters[letter]
	if !ok {
		index = 0
	}
	d.record.AnswerIndex = index
}

// Parse converts quiz text into records in encounter order.
//
// Lines are trimmed and blank lines skipped. A "Q<n>. text" line closes the
// open question and starts a new one; "A. text".."D. text" lines add options
// and a "Correct Answer: X" line picks the answer. Option and answer lines
// seen before the first question, and any other text, are ignored.
func Parse(text string) []Record {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	records := []Record{}
	var open *draft
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if match := questionPattern.FindStringSubmatch(line); match != nil {
			if open != nil {
				records = append(records, open.record)
			}
			open = newDraft(match[1])
			continue
		}
		if open == nil {
			continue
		}
		if match := optionPattern.FindStringSubmatch(line); match != nil {
			open.addOption(match[1], match[2])
			continue
		}
		if match := answerPattern.FindStringSubmatch(line); match != nil {
			open.setAnswer(match[1])
		}
	}
	if open != nil {
		records = append(records, open.record)
	}
	return records
}
