package ports

import (
	"context"

	"github.com/mikey/applicant-screener/internal/core"
)

// EmailIngress defines the interface for receiving forwarded application
// emails and feeding them into the screening pipeline.
type EmailIngress interface {
	// ProcessEmail runs the pipeline for a single email
	ProcessEmail(ctx context.Context, email *core.InboundEmail) (*core.ScreeningOutcome, error)

	// Start starts the ingress service
	Start() error

	// Stop stops the ingress service
	Stop() error
}
