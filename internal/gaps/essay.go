package gaps

import (
	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/rubric"
)

// DetectEssayGaps maps an essay grade to skill gaps.
//
// Criteria are visited in payload order (the normalizer preserves it).
// A Yes contributes no gap; No is a high-severity gap scored 0 and
// Developing a medium gap scored 0.5, both against a max of 1.
func DetectEssayGaps(result *rubric.EssayGraderResult) []SkillGap {
	var out []SkillGap

	for _, cr := range result.Criteria {
		sev, score, gap := essaySeverity(cr.Status)
		if !gap {
			continue
		}
		out = append(out, SkillGap{
			Category:           string(cr.Criterion),
			Score:              score,
			MaxScore:           1,
			Severity:           sev,
			Feedback:           cr.Feedback,
			RecommendedLessons: catalog.EssayLessons(cr.Criterion, sev),
		})
	}

	return out
}

func essaySeverity(status rubric.CriterionStatus) (catalog.Severity, float64, bool) {
	switch status {
	case rubric.StatusNo:
		return catalog.SeverityHigh, 0, true
	case rubric.StatusDeveloping:
		return catalog.SeverityMedium, 0.5, true
	default:
		return "", 0, false
	}
}
