package catalog

import (
	"testing"

	"github.com/abhisek/scrivo/internal/rubric"
)

func TestSeverityRank(t *testing.T) {
	if SeverityHigh.Rank() <= SeverityMedium.Rank() || SeverityMedium.Rank() <= SeverityLow.Rank() {
		t.Error("severity ranks not strictly ordered high > medium > low")
	}
	if Severity("bogus").Rank() != 0 {
		t.Error("unknown severity must rank below low")
	}
}

func TestLessonTier(t *testing.T) {
	tests := []struct {
		id   string
		want Tier
	}{
		{"sentence-expansion", TierSentence},
		{"topic-sentence-basics", TierParagraph},
		{"thesis-statements", TierEssay},
		{"does-not-exist", TierUnmapped},
	}
	for _, tt := range tests {
		if got := LessonTier(tt.id); got != tt.want {
			t.Errorf("LessonTier(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestCatalogConsistency(t *testing.T) {
	all := AllLessons()
	if len(all) == 0 {
		t.Fatal("empty lesson catalog")
	}
	seen := make(map[string]bool)
	for _, l := range all {
		if l.ID == "" || l.Name == "" {
			t.Errorf("lesson %+v missing ID or name", l)
		}
		if seen[l.ID] {
			t.Errorf("duplicate lesson ID %q", l.ID)
		}
		seen[l.ID] = true
		if l.Tier < TierSentence || l.Tier > TierEssay {
			t.Errorf("lesson %q has out-of-range tier %d", l.ID, l.Tier)
		}
	}
}

func TestRemediationTablesResolve(t *testing.T) {
	// Every lesson a remediation table recommends must exist in the
	// catalog; a dangling ID would surface as an unnamed recommendation.
	for _, cat := range rubric.Categories() {
		for _, sev := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
			for _, id := range ParagraphLessons(cat, sev) {
				if _, ok := GetLesson(id); !ok {
					t.Errorf("paragraph remediation %s/%s references unknown lesson %q", cat, sev, id)
				}
			}
		}
	}
	for _, crit := range rubric.Criteria() {
		for _, sev := range []Severity{SeverityMedium, SeverityHigh} {
			for _, id := range EssayLessons(crit, sev) {
				if _, ok := GetLesson(id); !ok {
					t.Errorf("essay remediation %s/%s references unknown lesson %q", crit, sev, id)
				}
			}
		}
	}
}

func TestParagraphLessonsCoverage(t *testing.T) {
	// Every category must map to at least one lesson at medium and high.
	for _, cat := range rubric.Categories() {
		for _, sev := range []Severity{SeverityMedium, SeverityHigh} {
			if len(ParagraphLessons(cat, sev)) == 0 {
				t.Errorf("no lessons for %s at %s severity", cat, sev)
			}
		}
	}
}

func TestEssayLessonsCoverage(t *testing.T) {
	for _, crit := range rubric.Criteria() {
		for _, sev := range []Severity{SeverityMedium, SeverityHigh} {
			if len(EssayLessons(crit, sev)) == 0 {
				t.Errorf("no lessons for %s at %s severity", crit, sev)
			}
		}
	}
}

func TestRemediationReturnsCopies(t *testing.T) {
	first := ParagraphLessons(rubric.CategoryTopicSentence, SeverityHigh)
	if len(first) == 0 {
		t.Fatal("no lessons to test with")
	}
	first[0] = "mutated"

	again := ParagraphLessons(rubric.CategoryTopicSentence, SeverityHigh)
	if again[0] == "mutated" {
		t.Error("remediation table leaked a mutable slice")
	}
}
