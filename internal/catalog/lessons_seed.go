package catalog

// lessons is the curated lesson list, sentence tier first.
var lessons = []Lesson{
	// Sentence level
	{ID: "sentence-expansion", Name: "Expanding Bare Sentences", Tier: TierSentence},
	{ID: "sentence-combining", Name: "Sentence Combining", Tier: TierSentence},
	{ID: "fragments-and-runons", Name: "Fragments and Run-ons", Tier: TierSentence},
	{ID: "because-but-so", Name: "Because, But, So", Tier: TierSentence},
	{ID: "subordinating-conjunctions", Name: "Subordinating Conjunctions", Tier: TierSentence},
	{ID: "appositives", Name: "Appositives", Tier: TierSentence},
	{ID: "capitalization-and-punctuation", Name: "Capitalization and Punctuation", Tier: TierSentence},
	{ID: "commas-and-clauses", Name: "Commas and Clauses", Tier: TierSentence},

	// Paragraph level
	{ID: "topic-sentence-basics", Name: "Topic Sentence Basics", Tier: TierParagraph},
	{ID: "topic-sentence-variety", Name: "Topic Sentence Variety", Tier: TierParagraph},
	{ID: "supporting-details", Name: "Choosing Supporting Details", Tier: TierParagraph},
	{ID: "concluding-sentences", Name: "Concluding Sentences", Tier: TierParagraph},
	{ID: "paragraph-unity", Name: "Paragraph Unity", Tier: TierParagraph},
	{ID: "single-paragraph-outline", Name: "Single-Paragraph Outline", Tier: TierParagraph},
	{ID: "transitions-within-paragraphs", Name: "Transitions Within Paragraphs", Tier: TierParagraph},

	// Essay level
	{ID: "thesis-statements", Name: "Thesis Statements", Tier: TierEssay},
	{ID: "multiple-paragraph-outline", Name: "Multiple-Paragraph Outline", Tier: TierEssay},
	{ID: "essay-introductions", Name: "Essay Introductions", Tier: TierEssay},
	{ID: "essay-conclusions", Name: "Essay Conclusions", Tier: TierEssay},
	{ID: "transitions-between-paragraphs", Name: "Transitions Between Paragraphs", Tier: TierEssay},
}

var lessonIndex = buildLessonIndex()

func buildLessonIndex() map[string]Lesson {
	idx := make(map[string]Lesson, len(lessons))
	for _, l := range lessons {
		idx[l.ID] = l
	}
	return idx
}
