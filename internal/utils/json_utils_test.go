package utils

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			input:  `{"score": 80}`,
			want:   `{"score": 80}`,
			wantOK: true,
		},
		{
			name:   "object wrapped in prose",
			input:  `Here is my evaluation: {"score": 80, "status": "SHORTLIST"} hope that helps`,
			want:   `{"score": 80, "status": "SHORTLIST"}`,
			wantOK: true,
		},
		{
			name:   "object in markdown fence",
			input:  "```json\n{\"score\": 80}\n```",
			want:   `{"score": 80}`,
			wantOK: true,
		},
		{
			name:   "nested objects stay balanced",
			input:  `{"personal": {"name": "Jane"}, "skills": []}`,
			want:   `{"personal": {"name": "Jane"}, "skills": []}`,
			wantOK: true,
		},
		{
			name:   "braces inside strings are ignored",
			input:  `{"reasoning": "matched {2} of {3}"} trailing`,
			want:   `{"reasoning": "matched {2} of {3}"}`,
			wantOK: true,
		},
		{
			name:   "escaped quote inside string",
			input:  `{"reasoning": "said \"yes\" {"} trailing`,
			want:   `{"reasoning": "said \"yes\" {"}`,
			wantOK: true,
		},
		{
			name:   "first object wins",
			input:  `{"a": 1} {"b": 2}`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "no object",
			input:  "plain text only",
			wantOK: false,
		},
		{
			name:   "unterminated object",
			input:  `{"score": 80`,
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractJSONObject(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractJSONObject(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
