package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	tests := []struct {
		name    string
		input   string
		maxSize int
		want    string
	}{
		{name: "within limit unchanged", input: "short text", maxSize: 100, want: "short text"},
		{name: "exact limit unchanged", input: "abcde", maxSize: 5, want: "abcde"},
		{name: "truncated to limit", input: "abcdefghij", maxSize: 4, want: "abcd"},
		{name: "no limit", input: "anything", maxSize: 0, want: "anything"},
		{name: "empty input", input: "", maxSize: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tp.TruncateText(tt.input, tt.maxSize); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.input, tt.maxSize, got, tt.want)
			}
		})
	}
}

func TestTruncateTextKeepsUTF8Valid(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	// 4 ASCII bytes then a 3-byte rune; cutting at 6 lands mid-rune.
	input := "abcd€"
	got := tp.TruncateText(input, 6)

	if !utf8.ValidString(got) {
		t.Fatalf("TruncateText() produced invalid UTF-8: %q", got)
	}
	if got != "abcd" {
		t.Errorf("TruncateText() = %q, want %q", got, "abcd")
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	valid := "José González, 软件工程师"
	if got := tp.SanitizeUTF8(valid); got != valid {
		t.Errorf("SanitizeUTF8() changed valid input: got %q", got)
	}

	invalid := "start " + string([]byte{0xff, 0xfe}) + " end"
	got := tp.SanitizeUTF8(invalid)
	if !utf8.ValidString(got) {
		t.Fatalf("SanitizeUTF8() produced invalid UTF-8: %q", got)
	}
	if !strings.Contains(got, "start") || !strings.Contains(got, "end") {
		t.Errorf("SanitizeUTF8() dropped valid content: %q", got)
	}
}

func TestProcessText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	input := strings.Repeat("a", 50) + string([]byte{0xff})
	got := tp.ProcessText(input, 20)

	if len(got) > 20 {
		t.Errorf("ProcessText() length = %d, want <= 20", len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("ProcessText() produced invalid UTF-8: %q", got)
	}
}
