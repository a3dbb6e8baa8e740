package classify

import "testing"

func TestExtractIdentity(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		body      string
		wantName  string
		wantEmail string
	}{
		{
			name:      "display name in from header",
			from:      "Jane Doe <jane@example.com>",
			body:      "Please find my resume attached.",
			wantName:  "Jane Doe",
			wantEmail: "jane@example.com",
		},
		{
			name:      "quoted display name",
			from:      `"Doe, Jane" <jane@example.com>`,
			body:      "",
			wantName:  "Doe, Jane",
			wantEmail: "jane@example.com",
		},
		{
			name:      "bare address with my name is salutation",
			from:      "jane@example.com",
			body:      "Hello,\n\nMy name is Jane Doe and I would like to apply.",
			wantName:  "Jane Doe",
			wantEmail: "jane@example.com",
		},
		{
			name:      "bare address with signoff",
			from:      "john@example.com",
			body:      "I have five years of backend work.\n\nSincerely,\nJohn Smith",
			wantName:  "John Smith",
			wantEmail: "john@example.com",
		},
		{
			name:      "greeting pattern wins over later signoff",
			from:      "maria@example.com",
			body:      "Hi Maria, attaching the resume.\n\nRegards,\nSomeone Else",
			wantName:  "Maria",
			wantEmail: "maria@example.com",
		},
		{
			name:      "i am writing is not a name",
			from:      "sam@example.com",
			body:      "I am writing to apply for the role.",
			wantName:  "Unknown",
			wantEmail: "sam@example.com",
		},
		{
			name:      "no name anywhere",
			from:      "anon@example.com",
			body:      "resume below",
			wantName:  "Unknown",
			wantEmail: "anon@example.com",
		},
		{
			name:      "unparseable header with bracketed address",
			from:      "Jane @ Doe <jane@example.com>",
			body:      "",
			wantName:  "Unknown",
			wantEmail: "jane@example.com",
		},
		{
			name:      "bare address embedded in header text",
			from:      "forwarded by jane@example.com on Monday",
			body:      "",
			wantName:  "Unknown",
			wantEmail: "jane@example.com",
		},
		{
			name:      "no address at all falls back to raw header",
			from:      "not-an-address",
			body:      "",
			wantName:  "Unknown",
			wantEmail: "not-an-address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, email := ExtractIdentity(tt.from, tt.body)
			if name != tt.wantName {
				t.Errorf("ExtractIdentity() name = %q, want %q", name, tt.wantName)
			}
			if email != tt.wantEmail {
				t.Errorf("ExtractIdentity() email = %q, want %q", email, tt.wantEmail)
			}
		})
	}
}
