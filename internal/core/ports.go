package core

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by stores when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// TextGenerator defines the interface for a generative text model. Adapters
// treat an empty response as an error so callers only see usable text.
type TextGenerator interface {
	// Generate sends a prompt to the model and returns the raw response text
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmailClassifier resolves an inbound email to a job posting and candidate
// identity. It returns nil only on an unexpected internal fault; an email
// that matches nothing is a regular unmatched result, never an error.
type EmailClassifier interface {
	Classify(ctx context.Context, email *InboundEmail) *ClassificationResult
}

// ResumeParser converts free resume text into a structured record. It is
// total: every input, and every model failure, yields a well-formed resume.
type ResumeParser interface {
	Parse(ctx context.Context, text string) *ParsedResume
}

// CandidateScorer computes a 0-100 score for a resume against a job posting.
// It is total; when the model path is exhausted it falls back to a
// deterministic keyword heuristic.
type CandidateScorer interface {
	Score(ctx context.Context, job *JobPosting, cvText string) *ScoringResult
}

// ApplicationStore defines the persistence interface for the pipeline.
type ApplicationStore interface {
	// FindJobPosting resolves a (job title, company name) pair to a posting
	// using case-insensitive exact matching. Returns ErrNotFound on a miss.
	FindJobPosting(ctx context.Context, jobTitle, companyName string) (*JobPosting, error)

	// UpsertApplication creates the application row or, when one already
	// exists for (job_posting_id, email), updates its candidate fields.
	// Returns the application ID in both cases.
	UpsertApplication(ctx context.Context, app *Application) (int64, error)

	// UpdateScore writes the scoring output to an existing application.
	// Returns ErrNotFound when the row no longer exists; callers must treat
	// that as fatal rather than retry against a possibly reused ID.
	UpdateScore(ctx context.Context, applicationID int64, score int, status CandidateStatus, reasoning string) error

	// UpdateResume writes the resume URL and parsed resume JSON.
	UpdateResume(ctx context.Context, applicationID int64, resumeURL, parsedResumeJSON string) error

	// UpdateInterview writes interview scheduling fields. Driven by an
	// external workflow, not by this pipeline.
	UpdateInterview(ctx context.Context, applicationID int64, interviewTime time.Time, link, status string) error
}
