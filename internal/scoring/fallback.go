package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/mikey/applicant-screener/internal/core"
	"golang.org/x/text/cases"
)

// Weights of the deterministic scorer.
const (
	skillMatchWeight = 70
	experienceBonus  = 15
	educationBonus   = 10
)

var (
	experienceKeywords = []string{"experience", "worked", "years", "developed", "implemented", "managed"}
	educationKeywords  = []string{"degree", "bachelor", "master", "phd", "university", "college"}
)

// FallbackScore computes a deterministic score from keyword matching. It is
// pure: identical (required skills, resume text) always produce the identical
// result. This is the system's only reproducibility guarantee.
func FallbackScore(job *core.JobPosting, cvText string) *core.ScoringResult {
	folder := cases.Fold()
	folded := folder.String(cvText)

	matched := 0
	total := 0
	for _, skill := range job.RequiredSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		total++
		if strings.Contains(folded, folder.String(skill)) {
			matched++
		}
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(matched) / float64(total)
	}
	score := int(math.Round(ratio * skillMatchWeight))

	if containsAny(folded, experienceKeywords) {
		score += experienceBonus
	}
	if containsAny(folded, educationKeywords) {
		score += educationBonus
	}
	if score > 100 {
		score = 100
	}

	return &core.ScoringResult{
		Score:     score,
		Reasoning: fmt.Sprintf("Keyword screening matched %d of %d required skills.", matched, total),
	}
}

func containsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
