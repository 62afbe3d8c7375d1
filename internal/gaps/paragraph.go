package gaps

import (
	"strings"

	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/rubric"
)

// DetectParagraphGaps maps a paragraph grade to skill gaps.
//
// Categories are visited in rubric order, so the returned gaps carry
// that order; the prioritizer relies on it as a tie-break between gaps
// of equal severity. Categories scoring a full 5 contribute no gap.
func DetectParagraphGaps(result *rubric.GraderResult) []SkillGap {
	var out []SkillGap

	for _, cat := range rubric.Categories() {
		score, ok := result.Scores.Score(cat)
		if !ok {
			continue
		}
		sev, gap := paragraphSeverity(score)
		if !gap {
			continue
		}
		out = append(out, SkillGap{
			Category:           string(cat),
			Score:              float64(score),
			MaxScore:           rubric.CategoryMax,
			Severity:           sev,
			Feedback:           relatedRemark(result.Remarks, cat),
			RecommendedLessons: catalog.ParagraphLessons(cat, sev),
		})
	}

	return out
}

// paragraphSeverity maps a 0-5 category score to a gap severity.
// A 5 is no gap at all.
func paragraphSeverity(score int) (catalog.Severity, bool) {
	switch {
	case score <= 2:
		return catalog.SeverityHigh, true
	case score == 3:
		return catalog.SeverityMedium, true
	case score == 4:
		return catalog.SeverityLow, true
	default:
		return "", false
	}
}

// relatedRemark finds the first remark whose free-text category contains
// the first word of the rubric category's display name, case-insensitively.
// Matching only the first word means "Topic" catches both "Topic Sentence"
// and "Topic development" remarks; first match wins, no best-match scoring.
func relatedRemark(remarks []rubric.Remark, cat rubric.Category) string {
	keyword, _, _ := strings.Cut(cat.DisplayName(), " ")
	keyword = strings.ToLower(keyword)
	for _, r := range remarks {
		if strings.Contains(strings.ToLower(r.Category), keyword) {
			return r.ConcreteProblem
		}
	}
	return ""
}
