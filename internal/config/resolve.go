package config

import (
	"strings"
)

// ResolveAPIKey returns the first non-blank candidate. Candidates are tried
// in the order given, which is the rotation priority: primary key first, then
// the backups. The second return value is false when no candidate is usable;
// the caller then runs on the deterministic fallback for the process
// lifetime.
func ResolveAPIKey(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if key := strings.TrimSpace(candidate); key != "" {
			return key, true
		}
	}
	return "", false
}
