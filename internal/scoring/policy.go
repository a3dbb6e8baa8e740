package scoring

import (
	"github.com/mikey/applicant-screener/internal/core"
)

// Status thresholds. Both are inclusive lower bounds of their bands.
const (
	shortlistThreshold = 80
	flaggedThreshold   = 50
)

// StatusFor maps a score to its terminal status. This policy is applied to
// every scoring path and overrides any status the model proposed itself.
func StatusFor(score int) core.CandidateStatus {
	switch {
	case score >= shortlistThreshold:
		return core.StatusShortlist
	case score >= flaggedThreshold:
		return core.StatusFlagged
	default:
		return core.StatusRejected
	}
}

// ClampScore bounds a raw model score to [0, 100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
