package catalog

import "github.com/abhisek/scrivo/internal/rubric"

// paragraphRemediation maps paragraph category and severity to lessons.
// A missing entry means no recommendation, not an error.
var paragraphRemediation = map[rubric.Category]map[Severity][]string{
	rubric.CategoryTopicSentence: {
		SeverityHigh:   {"topic-sentence-basics", "sentence-expansion"},
		SeverityMedium: {"topic-sentence-basics"},
		SeverityLow:    {"topic-sentence-variety"},
	},
	rubric.CategoryDetailSentences: {
		SeverityHigh:   {"supporting-details", "because-but-so"},
		SeverityMedium: {"supporting-details"},
		SeverityLow:    {"sentence-combining"},
	},
	rubric.CategoryConcludingSentence: {
		SeverityHigh:   {"concluding-sentences", "single-paragraph-outline"},
		SeverityMedium: {"concluding-sentences"},
		SeverityLow:    {"sentence-combining"},
	},
	rubric.CategoryConventions: {
		SeverityHigh:   {"fragments-and-runons", "capitalization-and-punctuation"},
		SeverityMedium: {"commas-and-clauses"},
		SeverityLow:    {"commas-and-clauses"},
	},
}

// essayRemediation maps essay criterion and severity to lessons.
// Essay gaps are only ever high (No) or medium (Developing).
var essayRemediation = map[rubric.Criterion]map[Severity][]string{
	rubric.CriterionThesis: {
		SeverityHigh:   {"thesis-statements", "multiple-paragraph-outline"},
		SeverityMedium: {"thesis-statements"},
	},
	rubric.CriterionTopicSentences: {
		SeverityHigh:   {"topic-sentence-basics", "paragraph-unity"},
		SeverityMedium: {"topic-sentence-variety"},
	},
	rubric.CriterionSupportingDetails: {
		SeverityHigh:   {"supporting-details", "sentence-expansion"},
		SeverityMedium: {"supporting-details"},
	},
	rubric.CriterionUnity: {
		SeverityHigh:   {"paragraph-unity", "single-paragraph-outline"},
		SeverityMedium: {"paragraph-unity"},
	},
	rubric.CriterionTransitions: {
		SeverityHigh:   {"transitions-between-paragraphs", "transitions-within-paragraphs"},
		SeverityMedium: {"transitions-between-paragraphs"},
	},
	rubric.CriterionConclusion: {
		SeverityHigh:   {"essay-conclusions", "concluding-sentences"},
		SeverityMedium: {"essay-conclusions"},
	},
	rubric.CriterionSentenceStrategies: {
		SeverityHigh:   {"sentence-expansion", "appositives"},
		SeverityMedium: {"subordinating-conjunctions"},
	},
	rubric.CriterionConventions: {
		SeverityHigh:   {"fragments-and-runons", "commas-and-clauses"},
		SeverityMedium: {"commas-and-clauses"},
	},
	rubric.CriterionParagraphCount: {
		SeverityHigh:   {"multiple-paragraph-outline"},
		SeverityMedium: {"multiple-paragraph-outline"},
	},
}

// ParagraphLessons returns the remedial lessons for a paragraph
// category at a severity. Empty when the table has no entry.
func ParagraphLessons(cat rubric.Category, sev Severity) []string {
	return copyLessons(paragraphRemediation[cat][sev])
}

// EssayLessons returns the remedial lessons for an essay criterion at
// a severity. Empty when the table has no entry.
func EssayLessons(crit rubric.Criterion, sev Severity) []string {
	return copyLessons(essayRemediation[crit][sev])
}

func copyLessons(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
