package store

import (
	"encoding/json"
	"strings"
)

// decodeSkills reads the required_skills column. Postings created by the web
// app store a JSON array; older rows hold a comma-separated list.
func decodeSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err == nil {
		return skills
	}

	parts := strings.Split(raw, ",")
	skills = make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
