package di

import (
	"flag"

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

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// LLM provider flags
	Provider    string
	MaxTokens   int
	Temperature float64
	TopP        float64

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIModelName string

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Store flags
	StoreType  string
	SQLitePath string
	MySQLDSN   string

	// Direct-mode job flags; when JobTitle is set, classification and
	// persistence are skipped and the email is scored against this posting
	JobTitle       string
	JobDescription string
	JobSkills      string

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// LLM provider flags
	flag.StringVar(&flags.Provider, "provider", "gemini", "LLM provider (gemini, openai, bedrock, none)")
	flag.IntVar(&flags.MaxTokens, "max-tokens", 1024, "Maximum tokens for LLM response")
	flag.Float64Var(&flags.Temperature, "temperature", 0.2, "Temperature for LLM generation")
	flag.Float64Var(&flags.TopP, "top-p", 0.9, "Top-p for LLM generation")

	// Gemini flags
	flag.StringVar(&flags.GeminiAPIKey, "gemini-api-key", "", "API key for Google Gemini")
	flag.StringVar(&flags.GeminiModelName, "gemini-model", "gemini-1.5-flash", "Gemini model name")

	// OpenAI flags
	flag.StringVar(&flags.OpenAIAPIKey, "openai-api-key", "", "API key for OpenAI")
	flag.StringVar(&flags.OpenAIModelName, "openai-model", "gpt-4", "OpenAI model name")

	// Bedrock flags
	flag.StringVar(&flags.BedrockRegion, "bedrock-region", "us-east-1", "AWS region for Bedrock")
	flag.StringVar(&flags.BedrockModelID, "bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Store flags
	flag.StringVar(&flags.StoreType, "store", "memory", "Application store (memory, sqlite, mysql)")
	flag.StringVar(&flags.SQLitePath, "sqlite-path", "./applicant_screener.db", "SQLite database path")
	flag.StringVar(&flags.MySQLDSN, "mysql-dsn", "", "MySQL DSN")

	// Direct-mode job flags
	flag.StringVar(&flags.JobTitle, "job-title", "", "Score directly against this job title, bypassing classification")
	flag.StringVar(&flags.JobDescription, "job-description", "", "Job description for direct scoring")
	flag.StringVar(&flags.JobSkills, "skills", "", "Comma-separated required skills for direct scoring")

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}
		return createConfigFromFlags(flags), nil
	}); err != nil {
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

	// Register text generator
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

	// Register pipeline components, concrete types included so direct mode
	// can score without the classification step
	if err := container.Provide(func(generator core.TextGenerator, logger *zap.Logger) *resume.Parser {
		return resume.NewParser(generator, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(generator core.TextGenerator, tp *utils.TextProcessor, logger *zap.Logger) *scoring.Engine {
		return scoring.NewEngine(generator, tp, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(store core.ApplicationStore, logger *zap.Logger) core.EmailClassifier {
		return classify.NewClassifier(store, logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(p *resume.Parser) core.ResumeParser { return p }); err != nil {
		return nil, err
	}
	if err := container.Provide(func(e *scoring.Engine) core.CandidateScorer { return e }); err != nil {
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

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// CLI-specific settings
	v.Set("server.ingress_type", "cli")
	v.Set("cli.verbose", flags.Verbose)

	// LLM provider
	v.Set("llm.provider", flags.Provider)

	switch flags.Provider {
	case "gemini":
		v.Set("gemini.api_key", flags.GeminiAPIKey)
		v.Set("gemini.model_name", flags.GeminiModelName)
		v.Set("gemini.max_tokens", flags.MaxTokens)
		v.Set("gemini.temperature", flags.Temperature)
		v.Set("gemini.top_p", flags.TopP)
	case "openai":
		v.Set("openai.api_key", flags.OpenAIAPIKey)
		v.Set("openai.model_name", flags.OpenAIModelName)
		v.Set("openai.max_tokens", flags.MaxTokens)
		v.Set("openai.temperature", flags.Temperature)
		v.Set("openai.top_p", flags.TopP)
	case "bedrock":
		v.Set("bedrock.region", flags.BedrockRegion)
		v.Set("bedrock.model_id", flags.BedrockModelID)
		v.Set("bedrock.max_tokens", flags.MaxTokens)
		v.Set("bedrock.temperature", flags.Temperature)
		v.Set("bedrock.top_p", flags.TopP)
	}

	// Store
	v.Set("store.type", flags.StoreType)
	v.Set("store.sqlite_path", flags.SQLitePath)
	if flags.MySQLDSN != "" {
		v.Set("store.mysql_dsn", flags.MySQLDSN)
	}

	return config.NewFromViper(v)
}
