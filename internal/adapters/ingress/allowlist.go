package ingress

import (
	"strings"

	"go.uber.org/zap"
)

// ForwarderAllowlist restricts which sender domains may deliver into the
// SMTP ingress. Applications are forwarded by the company's own inboxes, so
// an empty list means no restriction.
type ForwarderAllowlist struct {
	domains []string
	logger  *zap.Logger
}

// NewForwarderAllowlist creates a new allowlist from the configured domains
func NewForwarderAllowlist(domains []string, logger *zap.Logger) *ForwarderAllowlist {
	normalized := make([]string, 0, len(domains))
	for _, domain := range domains {
		if d := strings.ToLower(strings.TrimSpace(domain)); d != "" {
			normalized = append(normalized, d)
		}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized forwarder allowlist", zap.Strings("domains", normalized))
	}

	return &ForwarderAllowlist{
		domains: normalized,
		logger:  logger,
	}
}

// IsAllowed reports whether the envelope sender may deliver mail. An empty
// allowlist allows everyone.
func (a *ForwarderAllowlist) IsAllowed(from string) bool {
	if len(a.domains) == 0 {
		return true
	}

	parts := strings.Split(from, "@")
	if len(parts) != 2 {
		return false
	}
	domain := strings.ToLower(parts[1])

	for _, allowed := range a.domains {
		if allowed == domain {
			return true
		}
	}

	if a.logger != nil {
		a.logger.Debug("Sender domain not in forwarder allowlist",
			zap.String("domain", domain),
			zap.String("sender", from))
	}
	return false
}
