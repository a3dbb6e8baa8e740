package openai

import (
	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/core"
)

// Factory creates new instances of the OpenAI client
type Factory struct {
	apiKey      string
	modelName   string
	maxTokens   int
	temperature float32
	topP        float32
	logger      *zap.Logger
}

// NewFactory creates a new factory for OpenAI clients
func NewFactory(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	logger *zap.Logger,
) *Factory {
	return &Factory{
		apiKey:      apiKey,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		logger:      logger,
	}
}

// CreateTextGenerator creates a new OpenAI-backed text generator
func (f *Factory) CreateTextGenerator() (core.TextGenerator, error) {
	return NewClient(
		f.apiKey,
		f.modelName,
		f.maxTokens,
		f.temperature,
		f.topP,
		f.logger,
	), nil
}
