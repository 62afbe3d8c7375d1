// Package catalog holds the static curriculum data the grading pipeline
// consumes: the lesson list with pedagogical tiers, and the remediation
// tables mapping rubric weaknesses to lessons. It is seed data, not logic.
package catalog

// Severity grades how far below expectation a rubric category landed.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns a sortable weight for the severity; higher is more urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Tier is the TWR-style pedagogical level of a lesson. Sentence-level
// skills are taught before paragraph-level, paragraph before essay.
type Tier int

const (
	TierSentence  Tier = 1
	TierParagraph Tier = 2
	TierEssay     Tier = 3
	TierUnmapped  Tier = 4
)

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierSentence:
		return "Sentence"
	case TierParagraph:
		return "Paragraph"
	case TierEssay:
		return "Essay"
	default:
		return "Unmapped"
	}
}

// Lesson is one curated remedial lesson.
type Lesson struct {
	ID   string
	Name string
	Tier Tier
}

// LessonTier returns the pedagogical tier for a lesson ID.
// Unknown lessons sort after all mapped ones.
func LessonTier(id string) Tier {
	if l, ok := lessonIndex[id]; ok {
		return l.Tier
	}
	return TierUnmapped
}

// GetLesson returns the lesson for an ID, if it exists in the catalog.
func GetLesson(id string) (Lesson, bool) {
	l, ok := lessonIndex[id]
	return l, ok
}

// AllLessons returns every catalog lesson, tier by tier.
func AllLessons() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}
