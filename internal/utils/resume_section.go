package utils

import (
	"regexp"
	"strings"
)

var resumeMarkerRe = regexp.MustCompile(`(?im)^[ \t]*(?:resume|cv)[ \t]*:`)

// ExtractResumeSection returns the text after a "Resume:" or "CV:" marker
// line, for bodies that separate a cover note from inlined resume content.
// Without a marker the full body is returned unchanged.
func ExtractResumeSection(body string) string {
	if loc := resumeMarkerRe.FindStringIndex(body); loc != nil {
		return strings.TrimSpace(body[loc[1]:])
	}
	return body
}
