package gaps

import (
	"testing"

	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/rubric"
)

func TestDetectEssayGaps(t *testing.T) {
	result := &rubric.EssayGraderResult{
		Criteria: []rubric.CriterionResult{
			{Criterion: rubric.CriterionThesis, Status: rubric.StatusNo, Feedback: "no arguable claim"},
			{Criterion: rubric.CriterionTopicSentences, Status: rubric.StatusYes},
			{Criterion: rubric.CriterionUnity, Status: rubric.StatusDeveloping, Feedback: "second body drifts"},
		},
	}

	got := DetectEssayGaps(result)
	if len(got) != 2 {
		t.Fatalf("got %d gaps, want 2", len(got))
	}

	if got[0].Category != "thesis" || got[0].Severity != catalog.SeverityHigh || got[0].Score != 0 {
		t.Errorf("gap[0] = %+v, want high-severity thesis scored 0", got[0])
	}
	if got[0].Feedback != "no arguable claim" {
		t.Errorf("gap[0].Feedback = %q, want criterion feedback", got[0].Feedback)
	}
	if got[1].Category != "unity" || got[1].Severity != catalog.SeverityMedium || got[1].Score != 0.5 {
		t.Errorf("gap[1] = %+v, want medium-severity unity scored 0.5", got[1])
	}
	for i, g := range got {
		if g.MaxScore != 1 {
			t.Errorf("gap[%d].MaxScore = %v, want 1", i, g.MaxScore)
		}
	}
}

func TestDetectEssayGapsAllYes(t *testing.T) {
	var criteria []rubric.CriterionResult
	for _, c := range rubric.Criteria() {
		criteria = append(criteria, rubric.CriterionResult{Criterion: c, Status: rubric.StatusYes})
	}
	result := &rubric.EssayGraderResult{IsCorrect: true, Criteria: criteria}

	if got := DetectEssayGaps(result); len(got) != 0 {
		t.Errorf("got %d gaps for an all-Yes essay, want 0", len(got))
	}
}
