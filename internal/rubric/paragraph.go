package rubric

// Category identifies one of the four fixed paragraph rubric categories.
type Category string

const (
	CategoryTopicSentence      Category = "topicSentence"
	CategoryDetailSentences    Category = "detailSentences"
	CategoryConcludingSentence Category = "concludingSentence"
	CategoryConventions        Category = "conventions"
)

// Categories returns the paragraph categories in rubric order.
// This order is load-bearing: gap detection iterates it, and the
// resulting gap order is the tie-break for lesson prioritization.
func Categories() []Category {
	return []Category{
		CategoryTopicSentence,
		CategoryDetailSentences,
		CategoryConcludingSentence,
		CategoryConventions,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryTopicSentence:
		return "Topic Sentence"
	case CategoryDetailSentences:
		return "Detail Sentences"
	case CategoryConcludingSentence:
		return "Concluding Sentence"
	case CategoryConventions:
		return "Conventions"
	default:
		return string(c)
	}
}

// CategoryMax is the maximum score for each paragraph category.
const CategoryMax = 5

// ParagraphMaxTotal is the maximum total across all four categories.
const ParagraphMaxTotal = len(paragraphCategories) * CategoryMax

// paragraphCategories mirrors Categories() as a fixed array so the
// max-total constant stays in sync with the category count.
var paragraphCategories = [4]Category{
	CategoryTopicSentence,
	CategoryDetailSentences,
	CategoryConcludingSentence,
	CategoryConventions,
}

// CategoryScore is one scored paragraph rubric category.
type CategoryScore struct {
	Category Category `json:"categoryId"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
}

// ParagraphScores holds the per-category scores plus derived totals.
// Categories is always in Categories() order after normalization.
type ParagraphScores struct {
	Categories []CategoryScore `json:"categories"`
	Total      int             `json:"total"`
	MaxTotal   int             `json:"maxTotal"`
	Percentage int             `json:"percentage"`
}

// Score returns the score for a category, and whether it was present.
func (s *ParagraphScores) Score(c Category) (int, bool) {
	for _, cs := range s.Categories {
		if cs.Category == c {
			return cs.Score, true
		}
	}
	return 0, false
}

// GraderResult is the normalized outcome of grading one paragraph.
type GraderResult struct {
	IsCorrect bool            `json:"isCorrect"`
	Remarks   []Remark        `json:"remarks"`
	Scores    ParagraphScores `json:"scores"`
}

// Kind reports KindParagraph.
func (r *GraderResult) Kind() Kind { return KindParagraph }

// Percent reports the overall percentage score.
func (r *GraderResult) Percent() int { return r.Scores.Percentage }

// Correct reports whether the paragraph passed without error remarks.
func (r *GraderResult) Correct() bool { return r.IsCorrect }
