package classify

import "testing"

func TestParseSubject(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		wantTitle   string
		wantCompany string
		wantOK      bool
	}{
		{
			name:        "application for title at company",
			subject:     "Application for Backend Engineer at Acme Corp",
			wantTitle:   "Backend Engineer",
			wantCompany: "Acme Corp",
			wantOK:      true,
		},
		{
			name:        "apply for title at company",
			subject:     "Apply for Data Scientist at Globex",
			wantTitle:   "Data Scientist",
			wantCompany: "Globex",
			wantOK:      true,
		},
		{
			name:        "application colon title dash company",
			subject:     "Application: Platform Engineer - Initech",
			wantTitle:   "Platform Engineer",
			wantCompany: "Initech",
			wantOK:      true,
		},
		{
			name:        "title at company dash application",
			subject:     "SRE at Hooli - Application",
			wantTitle:   "SRE",
			wantCompany: "Hooli",
			wantOK:      true,
		},
		{
			name:        "matching is case-insensitive",
			subject:     "APPLICATION FOR Backend Engineer AT Acme Corp",
			wantTitle:   "Backend Engineer",
			wantCompany: "Acme Corp",
			wantOK:      true,
		},
		{
			name:        "surrounding whitespace is trimmed",
			subject:     "  Application for Backend Engineer at Acme Corp  ",
			wantTitle:   "Backend Engineer",
			wantCompany: "Acme Corp",
			wantOK:      true,
		},
		{
			name:    "forwarded noise does not match",
			subject: "Fwd: lunch on Friday?",
			wantOK:  false,
		},
		{
			name:    "empty subject",
			subject: "",
			wantOK:  false,
		},
		{
			name:    "application keyword alone",
			subject: "Application",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, company, ok := ParseSubject(tt.subject)
			if ok != tt.wantOK {
				t.Fatalf("ParseSubject(%q) ok = %v, want %v", tt.subject, ok, tt.wantOK)
			}
			if title != tt.wantTitle {
				t.Errorf("ParseSubject(%q) title = %q, want %q", tt.subject, title, tt.wantTitle)
			}
			if company != tt.wantCompany {
				t.Errorf("ParseSubject(%q) company = %q, want %q", tt.subject, company, tt.wantCompany)
			}
		})
	}
}
