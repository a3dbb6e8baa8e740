package config

import "testing"

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		wantKey    string
		wantOK     bool
	}{
		{
			name:       "primary key wins",
			candidates: []string{"primary", "backup1", "backup2"},
			wantKey:    "primary",
			wantOK:     true,
		},
		{
			name:       "blank primary falls to first backup",
			candidates: []string{"", "backup1", "backup2"},
			wantKey:    "backup1",
			wantOK:     true,
		},
		{
			name:       "whitespace counts as blank",
			candidates: []string{"   ", "\t", "backup2"},
			wantKey:    "backup2",
			wantOK:     true,
		},
		{
			name:       "key is trimmed",
			candidates: []string{"  primary \n"},
			wantKey:    "primary",
			wantOK:     true,
		},
		{
			name:       "all blank",
			candidates: []string{"", "  ", ""},
			wantOK:     false,
		},
		{
			name:       "no candidates",
			candidates: nil,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ResolveAPIKey(tt.candidates)
			if ok != tt.wantOK {
				t.Fatalf("ResolveAPIKey(%q) ok = %v, want %v", tt.candidates, ok, tt.wantOK)
			}
			if key != tt.wantKey {
				t.Errorf("ResolveAPIKey(%q) = %q, want %q", tt.candidates, key, tt.wantKey)
			}
		})
	}
}
