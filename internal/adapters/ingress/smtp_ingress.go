package ingress

import (
	"context"
	"io"
	"net/mail"
	"time"

	"github.com/emersion/go-smtp"
	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

const processTimeout = 2 * time.Minute

// SMTPIngress receives forwarded application emails over SMTP and runs the
// screening pipeline on each delivery. Pipeline failures never bounce the
// message; the forwarding inbox is not the party that can fix them.
type SMTPIngress struct {
	service    *core.ScreeningService
	logger     *zap.Logger
	listenAddr string
	allowlist  *ForwarderAllowlist
	server     *smtp.Server
}

// NewSMTPIngress creates a new SMTP ingress
func NewSMTPIngress(
	service *core.ScreeningService,
	logger *zap.Logger,
	listenAddr string,
	allowlist *ForwarderAllowlist,
) *SMTPIngress {
	return &SMTPIngress{
		service:    service,
		logger:     logger,
		listenAddr: listenAddr,
		allowlist:  allowlist,
	}
}

// Start starts the SMTP server
func (s *SMTPIngress) Start() error {
	s.server = smtp.NewServer(&smtpBackend{ingress: s})

	s.server.Addr = s.listenAddr
	s.server.Domain = "localhost"
	s.server.ReadTimeout = 30 * time.Second
	s.server.WriteTimeout = 30 * time.Second
	s.server.MaxMessageBytes = 30 * 1024 * 1024 // 30MB
	s.server.MaxRecipients = 50
	s.server.AllowInsecureAuth = true

	s.logger.Info("SMTP ingress starting", zap.String("address", s.listenAddr))

	go func() {
		if err := s.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				s.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP server
func (s *SMTPIngress) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// ProcessEmail runs the screening pipeline for a single email
func (s *SMTPIngress) ProcessEmail(ctx context.Context, email *core.InboundEmail) (*core.ScreeningOutcome, error) {
	return s.service.ProcessEmail(ctx, email)
}

type smtpBackend struct {
	ingress *SMTPIngress
}

func (b *smtpBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{ingress: b.ingress}, nil
}

type smtpSession struct {
	ingress *SMTPIngress
	from    string
}

func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	if !s.ingress.allowlist.IsAllowed(from) {
		s.ingress.logger.Warn("Rejected sender outside forwarder allowlist",
			zap.String("sender", from))
		return &smtp.SMTPError{
			Code:         550,
			EnhancedCode: smtp.EnhancedCode{5, 7, 1},
			Message:      "Sender not permitted",
		}
	}
	s.from = from
	return nil
}

func (s *smtpSession) Rcpt(_ string, _ *smtp.RcptOptions) error {
	return nil
}

func (s *smtpSession) Data(r io.Reader) error {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		s.ingress.logger.Error("Failed to parse message", zap.Error(err))
		return &smtp.SMTPError{
			Code:         554,
			EnhancedCode: smtp.EnhancedCode{5, 6, 0},
			Message:      "Unparseable message",
		}
	}

	content, err := extractContent(msg)
	if err != nil {
		s.ingress.logger.Error("Failed to read message body", zap.Error(err))
		return &smtp.SMTPError{
			Code:         554,
			EnhancedCode: smtp.EnhancedCode{5, 6, 0},
			Message:      "Unreadable message body",
		}
	}

	body := content.body
	if content.resumeText != "" {
		body = content.resumeText
	}

	email := &core.InboundEmail{
		Subject:     msg.Header.Get("Subject"),
		From:        msg.Header.Get("From"),
		Body:        body,
		Attachments: content.attachments,
	}

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	outcome, err := s.ingress.service.ProcessEmail(ctx, email)
	if err != nil {
		// Accept the delivery anyway; the failure is ours, not the sender's.
		s.ingress.logger.Error("Screening pipeline failed",
			zap.String("subject", email.Subject),
			zap.Error(err))
		return nil
	}

	if outcome.Scoring != nil {
		s.ingress.logger.Info("Application screened",
			zap.Int64("application_id", outcome.ApplicationID),
			zap.Int("score", outcome.Scoring.Score),
			zap.String("status", string(outcome.Scoring.Status)))
	}
	return nil
}

func (s *smtpSession) Reset() {
	s.from = ""
}

func (s *smtpSession) Logout() error {
	return nil
}
