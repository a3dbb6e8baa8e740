package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/adapters/bedrock"
	"github.com/mikey/applicant-screener/internal/adapters/gemini"
	"github.com/mikey/applicant-screener/internal/adapters/openai"
	"github.com/mikey/applicant-screener/internal/config"
	"github.com/mikey/applicant-screener/internal/core"
)

// LLMFactory creates text generators
type LLMFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger) *LLMFactory {
	return &LLMFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateTextGenerator creates a text generator for the configured provider.
// A nil generator (with nil error) means no credential is available; the
// pipeline then runs on its deterministic fallbacks for the process lifetime.
func (f *LLMFactory) CreateTextGenerator() (core.TextGenerator, error) {
	llmConfig := f.cfg.GetLLM()

	switch llmConfig.Provider {
	case "", "none":
		f.logger.Info("No LLM provider configured, using deterministic fallbacks")
		return nil, nil
	case "gemini":
		gcfg := f.cfg.GetGemini()
		apiKey, ok := config.ResolveAPIKey(gcfg.APIKeyCandidates())
		if !ok {
			f.logger.Info("No Gemini API key configured, using deterministic fallbacks")
			return nil, nil
		}
		factory := gemini.NewFactory(apiKey, gcfg.ModelName, gcfg.MaxTokens, gcfg.Temperature, gcfg.TopP, f.logger)
		return factory.CreateTextGenerator()
	case "openai":
		ocfg := f.cfg.GetOpenAI()
		apiKey, ok := config.ResolveAPIKey([]string{ocfg.APIKey})
		if !ok {
			f.logger.Info("No OpenAI API key configured, using deterministic fallbacks")
			return nil, nil
		}
		factory := openai.NewFactory(apiKey, ocfg.ModelName, ocfg.MaxTokens, ocfg.Temperature, ocfg.TopP, f.logger)
		return factory.CreateTextGenerator()
	case "bedrock":
		bcfg := f.cfg.GetBedrock()
		factory := bedrock.NewFactory(bcfg.Region, bcfg.ModelID, bcfg.MaxTokens, bcfg.Temperature, bcfg.TopP, f.logger)
		return factory.CreateTextGenerator()
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmConfig.Provider)
	}
}
