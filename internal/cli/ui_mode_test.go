package cli

import (
	"io"
	"testing"
)

// TestUseColor verifies flag, environment and TTY handling.
func TestUseColor(t *testing.T) {
	cases := []struct {
		name    string
		noColor bool
		env     map[string]string
		isTTY   bool
		want    bool
	}{
		{name: "tty", isTTY: true, want: true},
		{name: "non-tty", isTTY: false, want: false},
		{name: "flag", noColor: true, isTTY: true, want: false},
		{name: "NO_COLOR", env: map[string]string{"NO_COLOR": "1"}, isTTY: true, want: false},
		{name: "dumb term", env: map[string]string{"TERM": "dumb"}, isTTY: true, want: false},
		{name: "CLICOLOR=0", env: map[string]string{"CLICOLOR": "0"}, isTTY: true, want: false},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TERM", "xterm-256color")
			t.Setenv("CLICOLOR", "")
			t.Setenv("NO_COLOR", "")
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			if got := useColor(tc.noColor, nil); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
