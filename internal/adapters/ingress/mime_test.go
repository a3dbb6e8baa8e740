package ingress

import (
	"net/mail"
	"strings"
	"testing"
)

func parseMessage(t *testing.T, raw string) *mail.Message {
	t.Helper()
	msg, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("mail.ReadMessage() error = %v", err)
	}
	return msg
}

func TestExtractContentPlainText(t *testing.T) {
	raw := "From: jane@example.com\r\n" +
		"Subject: Application for Backend Engineer at Acme Corp\r\n" +
		"\r\n" +
		"My resume is below.\r\n"

	content, err := extractContent(parseMessage(t, raw))
	if err != nil {
		t.Fatalf("extractContent() error = %v", err)
	}
	if !strings.Contains(content.body, "My resume is below.") {
		t.Errorf("body = %q, want the plain text payload", content.body)
	}
	if len(content.attachments) != 0 {
		t.Errorf("attachments = %v, want none", content.attachments)
	}
	if content.resumeText != "" {
		t.Errorf("resumeText = %q, want empty", content.resumeText)
	}
}

func TestExtractContentMultipartWithAttachment(t *testing.T) {
	raw := "From: jane@example.com\r\n" +
		"Subject: Application for Backend Engineer at Acme Corp\r\n" +
		"Content-Type: multipart/mixed; boundary=\"frontier\"\r\n" +
		"\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"Hi, please find my resume attached.\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/plain; name=\"resume.txt\"\r\n" +
		"Content-Disposition: attachment; filename=\"resume.txt\"\r\n" +
		"\r\n" +
		"Jane Doe. Five years of Go experience.\r\n" +
		"--frontier\r\n" +
		"Content-Type: application/pdf; name=\"cover.pdf\"\r\n" +
		"Content-Disposition: attachment; filename=\"cover.pdf\"\r\n" +
		"\r\n" +
		"%PDF-1.4\r\n" +
		"--frontier--\r\n"

	content, err := extractContent(parseMessage(t, raw))
	if err != nil {
		t.Fatalf("extractContent() error = %v", err)
	}
	if !strings.Contains(content.body, "please find my resume attached") {
		t.Errorf("body = %q, want the cover note", content.body)
	}
	if len(content.attachments) != 2 || content.attachments[0] != "resume.txt" || content.attachments[1] != "cover.pdf" {
		t.Errorf("attachments = %v, want [resume.txt cover.pdf]", content.attachments)
	}
	if !strings.Contains(content.resumeText, "Five years of Go experience") {
		t.Errorf("resumeText = %q, want the text attachment payload", content.resumeText)
	}
}

func TestExtractContentNestedMultipart(t *testing.T) {
	raw := "From: jane@example.com\r\n" +
		"Content-Type: multipart/mixed; boundary=\"outer\"\r\n" +
		"\r\n" +
		"--outer\r\n" +
		"Content-Type: multipart/alternative; boundary=\"inner\"\r\n" +
		"\r\n" +
		"--inner\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"Nested body text.\r\n" +
		"--inner\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>Nested body text.</p>\r\n" +
		"--inner--\r\n" +
		"--outer--\r\n"

	content, err := extractContent(parseMessage(t, raw))
	if err != nil {
		t.Fatalf("extractContent() error = %v", err)
	}
	if !strings.Contains(content.body, "Nested body text.") {
		t.Errorf("body = %q, want the nested plain part", content.body)
	}
	if strings.Contains(content.body, "<p>") {
		t.Errorf("body = %q, should not collect the html alternative", content.body)
	}
}

func TestExtractContentBadContentTypeFallsBack(t *testing.T) {
	raw := "From: jane@example.com\r\n" +
		"Content-Type: garbage;;;\r\n" +
		"\r\n" +
		"still readable\r\n"

	content, err := extractContent(parseMessage(t, raw))
	if err != nil {
		t.Fatalf("extractContent() error = %v", err)
	}
	if !strings.Contains(content.body, "still readable") {
		t.Errorf("body = %q, want the raw payload", content.body)
	}
}
