package ingress

import (
	"testing"

	"go.uber.org/zap"
)

func TestForwarderAllowlist(t *testing.T) {
	tests := []struct {
		name    string
		domains []string
		from    string
		want    bool
	}{
		{
			name:    "empty list allows everyone",
			domains: nil,
			from:    "anyone@anywhere.example",
			want:    true,
		},
		{
			name:    "listed domain allowed",
			domains: []string{"acme.example"},
			from:    "hr@acme.example",
			want:    true,
		},
		{
			name:    "unlisted domain rejected",
			domains: []string{"acme.example"},
			from:    "recruiter@elsewhere.example",
			want:    false,
		},
		{
			name:    "domain match is case-insensitive",
			domains: []string{"Acme.Example"},
			from:    "hr@ACME.EXAMPLE",
			want:    true,
		},
		{
			name:    "configured domains are trimmed",
			domains: []string{"  acme.example  ", ""},
			from:    "hr@acme.example",
			want:    true,
		},
		{
			name:    "malformed sender rejected",
			domains: []string{"acme.example"},
			from:    "no-at-sign",
			want:    false,
		},
		{
			name:    "double at sign rejected",
			domains: []string{"acme.example"},
			from:    "a@b@acme.example",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewForwarderAllowlist(tt.domains, zap.NewNop())
			if got := a.IsAllowed(tt.from); got != tt.want {
				t.Errorf("IsAllowed(%q) with domains %v = %v, want %v", tt.from, tt.domains, got, tt.want)
			}
		})
	}
}
