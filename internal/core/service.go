package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mikey/applicant-screener/internal/utils"
	"go.uber.org/zap"
)

// ScreeningService is the core service that evaluates inbound applicants:
// classification, resume parsing, scoring and persistence.
type ScreeningService struct {
	classifier     EmailClassifier
	parser         ResumeParser
	scorer         CandidateScorer
	store          ApplicationStore
	textProcessor  *utils.TextProcessor
	logger         *zap.Logger
	maxResumeChars int
}

// NewScreeningService creates a new screening service
func NewScreeningService(
	classifier EmailClassifier,
	parser ResumeParser,
	scorer CandidateScorer,
	store ApplicationStore,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	maxResumeChars int,
) *ScreeningService {
	return &ScreeningService{
		classifier:     classifier,
		parser:         parser,
		scorer:         scorer,
		store:          store,
		textProcessor:  textProcessor,
		logger:         logger,
		maxResumeChars: maxResumeChars,
	}
}

// ClassifyEmail resolves an inbound email to a job posting and candidate
// identity. Nil is returned only on an unexpected internal fault.
func (s *ScreeningService) ClassifyEmail(ctx context.Context, email *InboundEmail) *ClassificationResult {
	return s.classifier.Classify(ctx, email)
}

// ProcessEmail runs the full pipeline for one inbound email. An unmatched
// email is a terminal outcome, not an error; the returned outcome then holds
// only the classification. A store miss while recording the score is fatal
// and surfaced to the caller.
func (s *ScreeningService) ProcessEmail(ctx context.Context, email *InboundEmail) (*ScreeningOutcome, error) {
	result := s.classifier.Classify(ctx, email)
	if result == nil {
		return nil, fmt.Errorf("classification failed for subject %q", email.Subject)
	}

	if !result.Matched {
		s.logger.Info("Email did not match any job posting",
			zap.String("subject", email.Subject),
			zap.String("candidate_email", result.CandidateEmail))
		return &ScreeningOutcome{Classification: result}, nil
	}

	s.logger.Info("Email classified",
		zap.String("job_title", result.JobTitle),
		zap.String("company", result.CompanyName),
		zap.String("candidate_email", result.CandidateEmail))

	// The parser receives pre-truncated text; the scorer excerpts further.
	cvText := s.textProcessor.ProcessText(utils.ExtractResumeSection(email.Body), s.maxResumeChars)
	parsed := s.parser.Parse(ctx, cvText)

	app := &Application{
		JobPostingID:  result.JobPostingID,
		CompanyID:     result.CompanyID,
		CandidateName: result.CandidateName,
		Email:         result.CandidateEmail,
		Phone:         parsed.Personal.Phone,
		ResumeURL:     firstAttachment(result.Attachments),
	}

	appID, err := s.store.UpsertApplication(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	if payload, err := json.Marshal(parsed); err != nil {
		s.logger.Warn("Failed to encode parsed resume", zap.Error(err))
	} else if err := s.store.UpdateResume(ctx, appID, app.ResumeURL, string(payload)); err != nil {
		s.logger.Warn("Failed to persist parsed resume",
			zap.Int64("application_id", appID),
			zap.Error(err))
	}

	scoring := s.scorer.Score(ctx, result.Job, cvText)

	if err := s.store.UpdateScore(ctx, appID, scoring.Score, scoring.Status, scoring.Reasoning); err != nil {
		return nil, fmt.Errorf("failed to record score for application %d: %w", appID, err)
	}

	s.logger.Info("Candidate scored",
		zap.Int64("application_id", appID),
		zap.Int("score", scoring.Score),
		zap.String("status", string(scoring.Status)))

	return &ScreeningOutcome{
		Classification: result,
		ApplicationID:  appID,
		Resume:         parsed,
		Scoring:        scoring,
	}, nil
}

func firstAttachment(attachments []string) string {
	if len(attachments) == 0 {
		return ""
	}
	return attachments[0]
}
