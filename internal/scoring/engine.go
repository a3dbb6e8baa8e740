package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mikey/applicant-screener/internal/core"
	"github.com/mikey/applicant-screener/internal/utils"
	"go.uber.org/zap"
)

// Resume excerpt sizes for the two model attempts.
const (
	primaryExcerptChars = 4000
	retryExcerptChars   = 2000
)

// attemptState drives the scoring attempt sequence. Retry is bounded to
// exactly one shortened attempt, then the deterministic fallback.
type attemptState int

const (
	statePrimary attemptState = iota
	stateRetry
	stateFallback
	stateDone
)

const primaryPromptFormat = `You are an applicant screening system. Evaluate how well the candidate's resume matches the job requirements.

Job title: %s
Job description: %s
Required skills: %s

Resume:
%s

Score the candidate from 0 to 100. In your reasoning, cite how many of the required skills the resume matches. Do not consider gender, ethnicity, age, religion, or location in your evaluation.
Respond with a JSON object containing:
- score: integer between 0 and 100
- status: one of "SHORTLIST", "FLAGGED", "REJECTED"
- reasoning: string (brief explanation citing the matched skill count)

Respond only with the JSON object and nothing else.`

const retryPromptFormat = `Score how well the resume matches the job from 0 to 100. Cite the matched required skill count in the reasoning. Do not consider gender, ethnicity, age, religion, or location.

Job title: %s
Required skills: %s

Resume:
%s

Respond only with a JSON object: {"score": <0-100>, "status": "<SHORTLIST|FLAGGED|REJECTED>", "reasoning": "<string>"}`

// modelResponse is the shape the model is asked to return. Its status is
// advisory only and discarded; score is clamped and rounded.
type modelResponse struct {
	Score     float64 `json:"score"`
	Status    string  `json:"status"`
	Reasoning string  `json:"reasoning"`
}

// Engine computes candidate scores. The model path gets one bounded retry
// with a shorter prompt; when both attempts fail, or no generator is
// configured, the deterministic fallback supplies the result. Either way the
// final status comes from the decision policy.
type Engine struct {
	generator     core.TextGenerator
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewEngine creates a new scoring engine. A nil generator pins the
// deterministic fallback for the process lifetime.
func NewEngine(generator core.TextGenerator, textProcessor *utils.TextProcessor, logger *zap.Logger) *Engine {
	return &Engine{
		generator:     generator,
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// Score evaluates a resume against a job posting. It never fails.
func (e *Engine) Score(ctx context.Context, job *core.JobPosting, cvText string) *core.ScoringResult {
	state := statePrimary
	if e.generator == nil {
		e.logger.Debug("No text generator configured, scoring deterministically")
		state = stateFallback
	}

	var result *core.ScoringResult
	for state != stateDone {
		switch state {
		case statePrimary:
			r, err := e.modelAttempt(ctx, job, cvText, false)
			if err != nil {
				e.logger.Warn("Primary scoring attempt failed", zap.Error(err))
				state = stateRetry
				break
			}
			result, state = r, stateDone
		case stateRetry:
			r, err := e.modelAttempt(ctx, job, cvText, true)
			if err != nil {
				e.logger.Warn("Retry scoring attempt failed, falling back", zap.Error(err))
				state = stateFallback
				break
			}
			result, state = r, stateDone
		case stateFallback:
			result, state = FallbackScore(job, cvText), stateDone
		}
	}

	// The policy is authoritative on both paths.
	result.Status = StatusFor(result.Score)
	return result
}

func (e *Engine) modelAttempt(ctx context.Context, job *core.JobPosting, cvText string, short bool) (*core.ScoringResult, error) {
	var prompt string
	if short {
		excerpt := e.textProcessor.ProcessText(cvText, retryExcerptChars)
		prompt = fmt.Sprintf(retryPromptFormat, job.Title, strings.Join(job.RequiredSkills, ", "), excerpt)
	} else {
		excerpt := e.textProcessor.ProcessText(cvText, primaryExcerptChars)
		prompt = fmt.Sprintf(primaryPromptFormat, job.Title, job.Description, strings.Join(job.RequiredSkills, ", "), excerpt)
	}

	raw, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	jsonStr, ok := utils.ExtractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	return &core.ScoringResult{
		Score:     ClampScore(int(math.Round(resp.Score))),
		Reasoning: resp.Reasoning,
	}, nil
}
