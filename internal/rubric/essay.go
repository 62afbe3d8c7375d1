package rubric

// Criterion identifies one of the nine fixed essay rubric criteria.
type Criterion string

const (
	CriterionThesis             Criterion = "thesis"
	CriterionTopicSentences     Criterion = "topicSentences"
	CriterionSupportingDetails  Criterion = "supportingDetails"
	CriterionUnity              Criterion = "unity"
	CriterionTransitions        Criterion = "transitions"
	CriterionConclusion         Criterion = "conclusion"
	CriterionSentenceStrategies Criterion = "sentenceStrategies"
	CriterionConventions        Criterion = "conventions"
	CriterionParagraphCount     Criterion = "paragraphCount"
)

// Criteria returns the essay criteria in rubric order. As with the
// paragraph categories, this order feeds gap-detection output order.
func Criteria() []Criterion {
	return []Criterion{
		CriterionThesis,
		CriterionTopicSentences,
		CriterionSupportingDetails,
		CriterionUnity,
		CriterionTransitions,
		CriterionConclusion,
		CriterionSentenceStrategies,
		CriterionConventions,
		CriterionParagraphCount,
	}
}

// DisplayName returns a human-readable label for the criterion.
func (c Criterion) DisplayName() string {
	switch c {
	case CriterionThesis:
		return "Thesis Statement"
	case CriterionTopicSentences:
		return "Topic Sentences"
	case CriterionSupportingDetails:
		return "Supporting Details"
	case CriterionUnity:
		return "Unity"
	case CriterionTransitions:
		return "Transitions"
	case CriterionConclusion:
		return "Conclusion"
	case CriterionSentenceStrategies:
		return "Sentence Strategies"
	case CriterionConventions:
		return "Conventions"
	case CriterionParagraphCount:
		return "Paragraph Count"
	default:
		return string(c)
	}
}

// Points returns the criterion's point weight toward the essay total.
// Weights are even numbers so a Developing result (half credit) stays
// integral. They sum to EssayMaxTotal.
func (c Criterion) Points() int {
	if c == CriterionThesis {
		return 4
	}
	return 2
}

// EssayMaxTotal is the maximum weighted total across all nine criteria.
const EssayMaxTotal = 20

// CriterionStatus is the categorical judgment for one essay criterion.
type CriterionStatus string

const (
	StatusYes        CriterionStatus = "Yes"
	StatusDeveloping CriterionStatus = "Developing"
	StatusNo         CriterionStatus = "No"
)

// PointsEarned returns the points a status earns against a weight.
func (s CriterionStatus) PointsEarned(weight int) int {
	switch s {
	case StatusYes:
		return weight
	case StatusDeveloping:
		return weight / 2
	default:
		return 0
	}
}

// CriterionResult is the judgment for one essay criterion.
type CriterionResult struct {
	Criterion  Criterion       `json:"criterionId"`
	Status     CriterionStatus `json:"status"`
	Feedback   string          `json:"feedback"`
	Highlights []string        `json:"highlights,omitempty"`
}

// EssayScores holds the weighted criterion points plus derived totals.
type EssayScores struct {
	Total      int `json:"total"`
	MaxTotal   int `json:"maxTotal"`
	Percentage int `json:"percentage"`
}

// EssayGraderResult is the normalized outcome of grading one essay.
type EssayGraderResult struct {
	IsCorrect      bool              `json:"isCorrect"`
	Criteria       []CriterionResult `json:"criteria"`
	Scores         EssayScores       `json:"scores"`
	ParagraphCount int               `json:"paragraphCount"`
}

// Kind reports KindEssay.
func (r *EssayGraderResult) Kind() Kind { return KindEssay }

// Percent reports the overall percentage score.
func (r *EssayGraderResult) Percent() int { return r.Scores.Percentage }

// Correct reports whether every criterion was met.
func (r *EssayGraderResult) Correct() bool { return r.IsCorrect }
