package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/applicant-screener/internal/classify"
	"github.com/mikey/applicant-screener/internal/config"
	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/factory"
	"github.com/mikey/applicant-screener/internal/logging"
	"github.com/mikey/applicant-screener/internal/ports"
	"github.com/mikey/applicant-screener/internal/resume"
	"github.com/mikey/applicant-screener/internal/scoring"
	"github.com/mikey/applicant-screener/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewIngressFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register text generator; nil when no credential is configured
	if err := container.Provide(func(f *factory.LLMFactory) (core.TextGenerator, error) {
		return f.CreateTextGenerator()
	}); err != nil {
		return nil, err
	}

	// Register application store
	if err := container.Provide(func(f *factory.StoreFactory) (core.ApplicationStore, error) {
		return f.CreateApplicationStore()
	}); err != nil {
		return nil, err
	}

	// Register pipeline components
	if err := container.Provide(func(store core.ApplicationStore, logger *zap.Logger) core.EmailClassifier {
		return classify.NewClassifier(store, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(generator core.TextGenerator, logger *zap.Logger) core.ResumeParser {
		return resume.NewParser(generator, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(generator core.TextGenerator, tp *utils.TextProcessor, logger *zap.Logger) core.CandidateScorer {
		return scoring.NewEngine(generator, tp, logger)
	}); err != nil {
		return nil, err
	}

	// Register resume truncation limit
	if err := container.Provide(func(cfg *config.Config) int {
		return cfg.GetInt("screening.max_resume_chars")
	}); err != nil {
		return nil, err
	}

	// Register screening service
	if err := container.Provide(core.NewScreeningService); err != nil {
		return nil, err
	}

	// Register email ingress
	if err := container.Provide(func(f *factory.IngressFactory) (ports.EmailIngress, error) {
		return f.CreateEmailIngress()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
