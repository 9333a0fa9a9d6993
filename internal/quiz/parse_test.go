package quiz

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

const twoQuestions = `Chapter 1 - Basics

Q1. What is 2+2?
A. 3
B. 4
C. 5
D. 6
Correct Answer: B

Q2. Which tag makes a link?
A. <a>
B. <link>
C. <href>
D. <url>
Correct Answer: A
`

// TestParseSingleQuestion verifies the canonical four-option example.
func TestParseSingleQuestion(t *testing.T) {
	input := "Q1. What is 2+2?\nA. 3\nB. 4\nC. 5\nD. 6\nCorrect Answer: B\n"
	got := Parse(input)
	want := []Record{{
		Question:    "What is 2+2?",
		Options:     []string{"3", "4", "5", "6"},
		AnswerIndex: 1,
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected records:\n got %+v\nwant %+v", got, want)
	}
}

// TestParseRecordsFollowQuestionLines verifies one record per question-start line, in order.
func TestParseRecordsFollowQuestionLines(t *testing.T) {
	got := Parse(twoQuestions)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Question != "What is 2+2?" || got[1].Question != "Which tag makes a link?" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].AnswerIndex != 1 || got[1].AnswerIndex != 0 {
		t.Fatalf("unexpected answers: %d, %d", got[0].AnswerIndex, got[1].AnswerIndex)
	}
	if !reflect.DeepEqual(got[1].Options, []string{"<a>", "<link>", "<href>", "<url>"}) {
		t.Fatalf("options leaked between questions: %+v", got[1].Options)
	}
}

// TestParseAnswerLetterMapsToPosition verifies each answer letter resolves to its option position.
func TestParseAnswerLetterMapsToPosition(t *testing.T) {
	for want, letter := range []string{"A", "B", "C", "D"} {
		input := "Q7. Pick one\nA. w\nB. x\nC. y\nD. z\nCorrect Answer: " + letter
		got := Parse(input)
		if len(got) != 1 || got[0].AnswerIndex != want {
			t.Fatalf("letter %s: expected index %d, got %+v", letter, want, got)
		}
	}
}

// TestParseEdgeCases covers the fallback and tolerance rules.
func TestParseEdgeCases(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Record{},
		},
		{
			name:  "question without options",
			input: "Q1. Lonely question",
			want:  []Record{{Question: "Lonely question", Options: []string{}, AnswerIndex: 0}},
		},
		{
			name:  "back to back questions",
			input: "Q1. First\nQ2. Second\n",
			want: []Record{
				{Question: "First", Options: []string{}},
				{Question: "Second", Options: []string{}},
			},
		},
		{
			name:  "answer letter never seen",
			input: "Q1. Two options\nA. yes\nB. no\nCorrect Answer: D",
			want:  []Record{{Question: "Two options", Options: []string{"yes", "no"}, AnswerIndex: 0}},
		},
		{
			name:  "answer without options keeps zero",
			input: "Q1. Nothing\nCorrect Answer: C",
			want:  []Record{{Question: "Nothing", Options: []string{}, AnswerIndex: 0}},
		},
		{
			name:  "option before any question is ignored",
			input: "A. stray\nCorrect Answer: A\nQ1. Real\nA. one\nCorrect Answer: A",
			want:  []Record{{Question: "Real", Options: []string{"one"}, AnswerIndex: 0}},
		},
		{
			name:  "repeated letter overwrites mapping but keeps both texts",
			input: "Q1. Dup\nA. first\nB. second\nA. third\nCorrect Answer: A",
			want:  []Record{{Question: "Dup", Options: []string{"first", "second", "third"}, AnswerIndex: 2}},
		},
		{
			name:  "more than four option lines are kept",
			input: "Q1. Many\nA. a\nB. b\nC. c\nD. d\nA. e\nCorrect Answer: D",
			want:  []Record{{Question: "Many", Options: []string{"a", "b", "c", "d", "e"}, AnswerIndex: 3}},
		},
		{
			name:  "unrelated lines are ignored",
			input: "Quiz header\nQ1. Keep\nnotes: ignore me\nE. not an option\na. lowercase\nA. ok\nCorrect answer: A\nCorrect Answer: A",
			want:  []Record{{Question: "Keep", Options: []string{"ok"}, AnswerIndex: 0}},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "   Q12.   Padded prompt   \n\t B.  spaced option \t\nCorrect Answer:   B  ",
			want:  []Record{{Question: "Padded prompt", Options: []string{"spaced option"}, AnswerIndex: 0}},
		},
		{
			name:  "question prefix needs a space after the period",
			input: "Q1.NoSpace\nQ2. Spaced",
			want:  []Record{{Question: "Spaced", Options: []string{}}},
		},
		{
			name:  "answer line trailing text is allowed",
			input: "Q1. Trailing\nA. x\nB. y\nCorrect Answer: B) y",
			want:  []Record{{Question: "Trailing", Options: []string{"x", "y"}, AnswerIndex: 1}},
		},
		{
			name:  "last answer line wins",
			input: "Q1. Twice\nA. x\nB. y\nCorrect Answer: B\nCorrect Answer: A",
			want:  []Record{{Question: "Twice", Options: []string{"x", "y"}, AnswerIndex: 0}},
		},
		{
			name:  "unresolved answer after a resolved one resets to zero",
			input: "Q1. a\nA. x\nB. y\nCorrect Answer: B\nCorrect Answer: D",
			want:  []Record{{Question: "a", Options: []string{"x", "y"}, AnswerIndex: 0}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected records:\n got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}

// TestParseLineEndingsAreEquivalent verifies CRLF and LF inputs parse identically.
func TestParseLineEndingsAreEquivalent(t *testing.T) {
	lf := Parse(twoQuestions)
	crlf := Parse(strings.ReplaceAll(twoQuestions, "\n", "\r\n"))
	if !reflect.DeepEqual(lf, crlf) {
		t.Fatalf("line endings changed output:\n lf %+v\ncrlf %+v", lf, crlf)
	}
}

// TestParseIsPure verifies repeated parses of the same text are identical and independent.
func TestParseIsPure(t *testing.T) {
	first := Parse(twoQuestions)
	first[0].Options[0] = "mutated"
	second := Parse(twoQuestions)
	if second[0].Options[0] != "3" {
		t.Fatalf("expected fresh records, got %+v", second[0])
	}
}

// TestParseConcurrentCalls verifies parallel parses share no state.
func TestParseConcurrentCalls(t *testing.T) {
	want := Parse(twoQuestions)
	const workers = 16
	results := make([][]Record, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Parse(twoQuestions)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("worker %d: unexpected records:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

// TestParseAnswerIndexInBounds verifies answerIndex always addresses an option when options exist.
func TestParseAnswerIndexInBounds(t *testing.T) {
	inputs := []string{
		twoQuestions,
		"Q1. a\nA. x\nCorrect Answer: D\nQ2. b\nC. y\nD. z\nCorrect Answer: D",
		"Q1. a\nB. x\nCorrect Answer: B\nQ2. b",
	}
	for _, input := range inputs {
		for _, record := range Parse(input) {
			if len(record.Options) == 0 {
				if record.AnswerIndex != 0 {
					t.Fatalf("expected 0 for empty options, got %d", record.AnswerIndex)
				}
				continue
			}
			if record.AnswerIndex < 0 || record.AnswerIndex >= len(record.Options) {
				t.Fatalf("answer index %d out of range for %+v", record.AnswerIndex, record)
			}
		}
	}
}
