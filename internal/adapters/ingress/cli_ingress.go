package ingress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

// CLIIngress runs the screening pipeline for a single email and prints the
// outcome, for one-shot invocations from the command line.
type CLIIngress struct {
	service *core.ScreeningService
	logger  *zap.Logger
	verbose bool
}

// NewCLIIngress creates a new CLI ingress
func NewCLIIngress(service *core.ScreeningService, logger *zap.Logger, verbose bool) *CLIIngress {
	return &CLIIngress{
		service: service,
		logger:  logger,
		verbose: verbose,
	}
}

// ProcessEmail processes an email and displays the results
func (f *CLIIngress) ProcessEmail(ctx context.Context, email *core.InboundEmail) (*core.ScreeningOutcome, error) {
	f.logger.Debug("Processing email", zap.String("from", email.From))

	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", email.From)
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("Body length: %d bytes\n", len(email.Body))
	if len(email.Attachments) > 0 {
		fmt.Printf("Attachments: %s\n", strings.Join(email.Attachments, ", "))
	}

	if f.verbose {
		preview := email.Body
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nBody preview:\n%s\n", preview)
	}

	fmt.Printf("\n=== Screening ===\n")
	startTime := time.Now()
	outcome, err := f.service.ProcessEmail(ctx, email)
	if err != nil {
		f.logger.Error("Failed to process email", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		return nil, err
	}
	duration := time.Since(startTime)

	cls := outcome.Classification
	fmt.Printf("Matched: %t\n", cls.Matched)
	fmt.Printf("Candidate: %s <%s>\n", cls.CandidateName, cls.CandidateEmail)
	if cls.Matched {
		fmt.Printf("Job: %s at %s\n", cls.JobTitle, cls.CompanyName)
		fmt.Printf("Application ID: %d\n", outcome.ApplicationID)
	}

	if outcome.Scoring != nil {
		fmt.Printf("\n=== Results ===\n")
		fmt.Printf("Score: %d\n", outcome.Scoring.Score)
		fmt.Printf("Status: %s\n", outcome.Scoring.Status)
		fmt.Printf("Reasoning: %s\n", outcome.Scoring.Reasoning)
	}
	fmt.Printf("Processing time: %v\n", duration)

	return outcome, nil
}

// Start is a no-op for the CLI ingress
func (f *CLIIngress) Start() error {
	return nil
}

// Stop is a no-op for the CLI ingress
func (f *CLIIngress) Stop() error {
	return nil
}
