package classify

import (
	"regexp"
	"strings"
)

// subjectPattern pairs a compiled pattern with the capture-group positions of
// the job title and company name. Patterns are tried in order, first match
// wins.
type subjectPattern struct {
	re           *regexp.Regexp
	titleGroup   int
	companyGroup int
}

var subjectPatterns = []subjectPattern{
	// Primary: "Application for <Title> at <Company>"
	{regexp.MustCompile(`(?i)^\s*application\s+for\s+(.+?)\s+at\s+(.+?)\s*$`), 1, 2},
	// "Apply for <Title> at <Company>"
	{regexp.MustCompile(`(?i)^\s*apply\s+for\s+(.+?)\s+at\s+(.+?)\s*$`), 1, 2},
	// "Application: <Title> - <Company>"
	{regexp.MustCompile(`(?i)^\s*application:\s*(.+?)\s*-\s*(.+?)\s*$`), 1, 2},
	// "<Title> at <Company> - Application"
	{regexp.MustCompile(`(?i)^\s*(.+?)\s+at\s+(.+?)\s*-\s*application\s*$`), 1, 2},
}

// ParseSubject extracts the job title and company name from an email subject.
// An unrecognized subject is not an error; ok is false and the caller treats
// the email as unmatched.
func ParseSubject(subject string) (jobTitle, companyName string, ok bool) {
	for _, p := range subjectPatterns {
		m := p.re.FindStringSubmatch(subject)
		if m == nil {
			continue
		}
		jobTitle = strings.TrimSpace(m[p.titleGroup])
		companyName = strings.TrimSpace(m[p.companyGroup])
		if jobTitle == "" || companyName == "" {
			continue
		}
		return jobTitle, companyName, true
	}
	return "", "", false
}
