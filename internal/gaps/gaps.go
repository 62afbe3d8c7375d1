// Package gaps derives skill gaps from normalized grading results.
// Gaps are always recomputed from a grading result, never stored as a
// source of truth of their own.
package gaps

import (
	"time"

	"github.com/abhisek/scrivo/internal/catalog"
)

// SkillGap is one detected weakness in a rubric category or criterion.
type SkillGap struct {
	Category           string           `json:"category"`
	Score              float64          `json:"score"`
	MaxScore           float64          `json:"maxScore"`
	Severity           catalog.Severity `json:"severity"`
	Feedback           string           `json:"feedback"`
	RecommendedLessons []string         `json:"recommendedLessons"`
}

// Snapshot is the gap set of one graded submission, as persisted in
// gap history and consumed by the ranked gate.
type Snapshot struct {
	SubmissionID string     `json:"submissionId"`
	RecordedAt   time.Time  `json:"recordedAt"`
	Gaps         []SkillGap `json:"gaps"`
}

// HasSevere reports whether any gap in the set is high severity.
func HasSevere(gaps []SkillGap) bool {
	for _, g := range gaps {
		if g.Severity == catalog.SeverityHigh {
			return true
		}
	}
	return false
}
