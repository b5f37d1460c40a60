package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTY_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("bytes.Buffer should not be a TTY")
	}
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
		term    string
		isTTY   bool
		want    bool
	}{
		{
			name:    "NO_COLOR prevents color",
			noColor: true,
			term:    "xterm-256color",
			isTTY:   true,
			want:    false,
		},
		{
			name:  "TERM=dumb prevents color",
			term:  "dumb",
			isTTY: true,
			want:  false,
		},
		{
			name:  "non-TTY prevents color",
			term:  "xterm-256color",
			isTTY: false,
			want:  false,
		},
		{
			name:  "TTY with sane TERM allows color",
			term:  "xterm-256color",
			isTTY: true,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv registers restoration of the original values.
			t.Setenv("NO_COLOR", "1")
			t.Setenv("TERM", tt.term)
			if !tt.noColor {
				os.Unsetenv("NO_COLOR")
			}

			var buf bytes.Buffer
			if got := supportsColor(&buf, tt.isTTY); got != tt.want {
				t.Errorf("supportsColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
