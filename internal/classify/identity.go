package classify

import (
	"net/mail"
	"regexp"
	"strings"
)

// UnknownCandidate is the sentinel name used when no display name or body
// salutation yields a candidate name. Identity fields are never empty.
const UnknownCandidate = "Unknown"

var (
	bracketAddrRe = regexp.MustCompile(`<([^<>\s]+@[^<>\s]+)>`)
	emailRe       = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Salutation patterns in priority order. The name captures are
	// case-sensitive on purpose: requiring capitalized words keeps phrases
	// like "I am writing to apply" from being read as a name.
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:[Hh]i|[Hh]ello|[Dd]ear)[ \t]+([A-Z][a-zA-Z'-]*(?:[ \t]+[A-Z][a-zA-Z'-]*)?)`),
		regexp.MustCompile(`\b(?:[Mm]y name is|[Ii] am)[ \t]+([A-Z][a-zA-Z'-]*(?:[ \t]+[A-Z][a-zA-Z'-]*)?)`),
		regexp.MustCompile(`\b(?:[Ss]incerely|[Bb]est [Rr]egards|[Rr]egards),?[ \t]*\n+[ \t]*([A-Z][a-zA-Z'-]*(?:[ \t]+[A-Z][a-zA-Z'-]*)?)`),
	}
)

// ExtractIdentity derives the candidate's name and email address from the
// From header and message body. Both return values are always non-empty: the
// name falls back to the Unknown sentinel and the email falls back to the raw
// From value, unvalidated, as a last resort.
func ExtractIdentity(from, body string) (name, email string) {
	name = extractName(from, body)
	email = extractEmail(from)
	return name, email
}

func extractName(from, body string) string {
	if addr, err := mail.ParseAddress(from); err == nil && strings.TrimSpace(addr.Name) != "" {
		return strings.TrimSpace(addr.Name)
	}

	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(body); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	return UnknownCandidate
}

func extractEmail(from string) string {
	if m := bracketAddrRe.FindStringSubmatch(from); m != nil {
		return m[1]
	}
	if m := emailRe.FindString(from); m != "" {
		return m
	}
	return from
}
