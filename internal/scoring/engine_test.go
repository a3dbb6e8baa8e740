package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/utils"
)

type stubGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	i := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func testJob() *core.JobPosting {
	return &core.JobPosting{
		ID:             1,
		Title:          "Backend Engineer",
		Description:    "Build and operate HTTP APIs",
		RequiredSkills: []string{"go", "sql"},
	}
}

func newTestEngine(gen core.TextGenerator) *Engine {
	return NewEngine(gen, utils.NewTextProcessor(zap.NewNop()), zap.NewNop())
}

func TestEngineScoreModelPath(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		wantScore  int
		wantStatus core.CandidateStatus
	}{
		{
			name:       "model status is overridden by policy",
			response:   `{"score": 84, "status": "REJECTED", "reasoning": "strong match"}`,
			wantScore:  84,
			wantStatus: core.StatusShortlist,
		},
		{
			name:       "fractional score is rounded",
			response:   `{"score": 49.5, "status": "SHORTLIST", "reasoning": "ok"}`,
			wantScore:  50,
			wantStatus: core.StatusFlagged,
		},
		{
			name:       "score above range is clamped",
			response:   `{"score": 150, "status": "SHORTLIST", "reasoning": "ok"}`,
			wantScore:  100,
			wantStatus: core.StatusShortlist,
		},
		{
			name:       "negative score is clamped",
			response:   `{"score": -3, "status": "REJECTED", "reasoning": "ok"}`,
			wantScore:  0,
			wantStatus: core.StatusRejected,
		},
		{
			name:       "json wrapped in markdown fence",
			response:   "Here is the evaluation:\n```json\n{\"score\": 61, \"status\": \"FLAGGED\", \"reasoning\": \"partial\"}\n```",
			wantScore:  61,
			wantStatus: core.StatusFlagged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{responses: []string{tt.response}}
			engine := newTestEngine(gen)

			got := engine.Score(context.Background(), testJob(), "Developed go services")

			if gen.calls != 1 {
				t.Errorf("generator called %d times, want 1", gen.calls)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score() score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Score() status = %q, want %q", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestEngineScoreRetriesWithShortPrompt(t *testing.T) {
	gen := &stubGenerator{
		errs:      []error{errors.New("model unavailable"), nil},
		responses: []string{"", `{"score": 55, "status": "FLAGGED", "reasoning": "ok"}`},
	}
	engine := newTestEngine(gen)

	got := engine.Score(context.Background(), testJob(), "Developed go services")

	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}
	if got.Score != 55 || got.Status != core.StatusFlagged {
		t.Errorf("Score() = (%d, %q), want (55, FLAGGED)", got.Score, got.Status)
	}
	if !strings.Contains(gen.prompts[0], "Build and operate HTTP APIs") {
		t.Errorf("primary prompt missing job description")
	}
	if strings.Contains(gen.prompts[1], "Build and operate HTTP APIs") {
		t.Errorf("retry prompt should not carry the job description")
	}
	if !strings.Contains(gen.prompts[1], "Backend Engineer") {
		t.Errorf("retry prompt missing job title")
	}
}

func TestEngineScoreRetriesOnUnparseableResponse(t *testing.T) {
	gen := &stubGenerator{
		responses: []string{
			"I cannot produce a score for this candidate.",
			`{"score": 30, "status": "REJECTED", "reasoning": "weak"}`,
		},
	}
	engine := newTestEngine(gen)

	got := engine.Score(context.Background(), testJob(), "Developed go services")

	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}
	if got.Score != 30 || got.Status != core.StatusRejected {
		t.Errorf("Score() = (%d, %q), want (30, REJECTED)", got.Score, got.Status)
	}
}

func TestEngineScoreFallsBackAfterTwoFailures(t *testing.T) {
	gen := &stubGenerator{
		errs: []error{errors.New("timeout"), errors.New("timeout")},
	}
	engine := newTestEngine(gen)
	cvText := "Developed go services"

	got := engine.Score(context.Background(), testJob(), cvText)

	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}
	want := FallbackScore(testJob(), cvText)
	if got.Score != want.Score {
		t.Errorf("Score() score = %d, want fallback score %d", got.Score, want.Score)
	}
	if got.Status != StatusFor(want.Score) {
		t.Errorf("Score() status = %q, want %q", got.Status, StatusFor(want.Score))
	}
	if got.Reasoning != want.Reasoning {
		t.Errorf("Score() reasoning = %q, want %q", got.Reasoning, want.Reasoning)
	}
}

func TestEngineScoreWithoutGenerator(t *testing.T) {
	engine := newTestEngine(nil)
	cvText := "go and sql experience at university"

	got := engine.Score(context.Background(), testJob(), cvText)

	want := FallbackScore(testJob(), cvText)
	if got.Score != want.Score {
		t.Errorf("Score() score = %d, want fallback score %d", got.Score, want.Score)
	}
	if got.Status != StatusFor(want.Score) {
		t.Errorf("Score() status = %q, want %q", got.Status, StatusFor(want.Score))
	}
}
