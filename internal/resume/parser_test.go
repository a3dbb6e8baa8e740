package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func assertEmptyResume(t *testing.T, got *core.ParsedResume) {
	t.Helper()
	if got == nil {
		t.Fatal("Parse() returned nil")
	}
	if got.Personal.Name != "" || got.Personal.Email != "" || got.Personal.Phone != "" {
		t.Errorf("Parse() personal = %+v, want empty", got.Personal)
	}
	if got.Skills == nil || len(got.Skills) != 0 {
		t.Errorf("Parse() skills = %v, want empty non-nil slice", got.Skills)
	}
	if got.Education == nil || got.Experience == nil || got.Awards == nil || got.Projects == nil {
		t.Error("Parse() left a collection field nil")
	}
	if got.Links == nil {
		t.Error("Parse() left links nil")
	}
}

func TestParseWellFormedResponse(t *testing.T) {
	gen := &stubGenerator{
		response: `Sure, here is the extraction:
{"personal": {"name": "Jane Doe", "email": "jane@example.com", "phone": "+1 555 0100"}, "skills": ["Go", "SQL"], "experience": ["Acme Corp, 2019-2024"]}`,
	}
	parser := NewParser(gen, zap.NewNop())

	got := parser.Parse(context.Background(), "Jane Doe\nBackend engineer since 2019")

	if got.Personal.Name != "Jane Doe" {
		t.Errorf("Parse() name = %q, want Jane Doe", got.Personal.Name)
	}
	if got.Personal.Phone != "+1 555 0100" {
		t.Errorf("Parse() phone = %q, want +1 555 0100", got.Personal.Phone)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Errorf("Parse() skills = %v, want [Go SQL]", got.Skills)
	}
	// Fields the model omitted are normalized to empty collections.
	if got.Education == nil || got.Links == nil {
		t.Error("Parse() left omitted fields nil")
	}
	if !strings.Contains(gen.prompt, "Backend engineer since 2019") {
		t.Error("prompt does not carry the resume text")
	}
}

func TestParseNeverFails(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{name: "model call error", gen: &stubGenerator{err: errors.New("quota exceeded")}},
		{name: "response without json", gen: &stubGenerator{response: "I could not parse this resume."}},
		{name: "malformed json", gen: &stubGenerator{response: `{"personal": {"name": }`}},
		{name: "empty response", gen: &stubGenerator{response: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(tt.gen, zap.NewNop())
			got := parser.Parse(context.Background(), "some resume text")
			assertEmptyResume(t, got)
		})
	}
}

func TestParseWithoutGenerator(t *testing.T) {
	parser := NewParser(nil, zap.NewNop())
	got := parser.Parse(context.Background(), "some resume text")
	assertEmptyResume(t, got)
}

func TestParseEmptyInput(t *testing.T) {
	gen := &stubGenerator{response: `{"skills": []}`}
	parser := NewParser(gen, zap.NewNop())

	got := parser.Parse(context.Background(), "")

	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	assertEmptyResume(t, got)
}
