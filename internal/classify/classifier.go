package classify

import (
	"context"
	"errors"

	"github.com/mikey/applicant-screener/internal/core"
	"go.uber.org/zap"
)

// JobFinder is the slice of the store the classifier needs.
type JobFinder interface {
	FindJobPosting(ctx context.Context, jobTitle, companyName string) (*core.JobPosting, error)
}

// Classifier resolves inbound emails to job postings and candidate identity.
type Classifier struct {
	jobs   JobFinder
	logger *zap.Logger
}

// NewClassifier creates a new email classifier
func NewClassifier(jobs JobFinder, logger *zap.Logger) *Classifier {
	return &Classifier{
		jobs:   jobs,
		logger: logger,
	}
}

// Classify parses the subject, resolves the job posting and extracts the
// candidate identity. An unparseable subject or unknown posting produces an
// unmatched result with the identity fields still populated; nil is returned
// only when the posting lookup itself fails.
func (c *Classifier) Classify(ctx context.Context, email *core.InboundEmail) *core.ClassificationResult {
	name, addr := ExtractIdentity(email.From, email.Body)

	result := &core.ClassificationResult{
		CandidateName:  name,
		CandidateEmail: addr,
		Attachments:    email.Attachments,
	}

	title, company, ok := ParseSubject(email.Subject)
	if !ok {
		c.logger.Debug("Subject matched no application pattern",
			zap.String("subject", email.Subject))
		return result
	}

	job, err := c.jobs.FindJobPosting(ctx, title, company)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			c.logger.Info("No job posting for subject",
				zap.String("job_title", title),
				zap.String("company", company))
			return result
		}
		c.logger.Error("Job posting lookup failed",
			zap.String("job_title", title),
			zap.String("company", company),
			zap.Error(err))
		return nil
	}

	result.Matched = true
	result.JobPostingID = job.ID
	result.CompanyID = job.CompanyID
	result.JobTitle = job.Title
	result.CompanyName = job.CompanyName
	result.Job = job
	return result
}
