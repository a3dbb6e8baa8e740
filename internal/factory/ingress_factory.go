package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/adapters/ingress"
	"github.com/mikey/applicant-screener/internal/config"
	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/ports"
)

// IngressFactory creates email ingresses based on configuration
type IngressFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.ScreeningService
}

// NewIngressFactory creates a new ingress factory
func NewIngressFactory(cfg *config.Config, logger *zap.Logger, service *core.ScreeningService) *IngressFactory {
	return &IngressFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateEmailIngress creates an email ingress based on the configuration
func (f *IngressFactory) CreateEmailIngress() (ports.EmailIngress, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.IngressType {
	case "smtp":
		allowlist := ingress.NewForwarderAllowlist(serverCfg.AllowedForwarders, f.logger)
		return ingress.NewSMTPIngress(
			f.service,
			f.logger,
			serverCfg.ListenAddress,
			allowlist,
		), nil
	case "cli":
		return ingress.NewCLIIngress(
			f.service,
			f.logger,
			f.cfg.GetBool("cli.verbose"),
		), nil
	default:
		return nil, fmt.Errorf("unsupported ingress type: %s", serverCfg.IngressType)
	}
}
