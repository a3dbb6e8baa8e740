package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/utils"
	"go.uber.org/zap"
)

const promptFormat = `You are a resume parsing system. Extract structured data from the resume below.
Respond with a JSON object matching exactly this schema:
{
  "personal": {"name": "", "email": "", "phone": ""},
  "education": [],
  "experience": [],
  "skills": [],
  "links": {},
  "awards": [],
  "projects": []
}
Use empty values for anything the resume does not state. Do not invent information.

Resume:
%s

Respond only with the strict JSON object and nothing else.`

// Parser converts free resume text into a structured record via a generative
// model. It is total: any failure, including a missing model credential,
// yields the well-formed empty resume. The caller truncates the input; the
// parser does not.
type Parser struct {
	generator core.TextGenerator
	logger    *zap.Logger
}

// NewParser creates a new resume parser. A nil generator pins the empty
// fallback for the process lifetime.
func NewParser(generator core.TextGenerator, logger *zap.Logger) *Parser {
	return &Parser{
		generator: generator,
		logger:    logger,
	}
}

// Parse extracts a structured resume from free text. It never fails.
func (p *Parser) Parse(ctx context.Context, text string) *core.ParsedResume {
	if p.generator == nil {
		p.logger.Debug("No text generator configured, returning empty resume")
		return core.EmptyParsedResume()
	}

	raw, err := p.generator.Generate(ctx, fmt.Sprintf(promptFormat, text))
	if err != nil {
		p.logger.Warn("Resume parsing model call failed", zap.Error(err))
		return core.EmptyParsedResume()
	}

	jsonStr, ok := utils.ExtractJSONObject(raw)
	if !ok {
		p.logger.Warn("No JSON object in resume parsing response",
			zap.Int("response_size", len(raw)))
		return core.EmptyParsedResume()
	}

	var parsed core.ParsedResume
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		p.logger.Warn("Failed to decode resume parsing response", zap.Error(err))
		return core.EmptyParsedResume()
	}

	parsed.Normalize()
	return &parsed
}
