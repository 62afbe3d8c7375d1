package rubric

// RemarkSeverity distinguishes blocking problems from polish suggestions.
type RemarkSeverity string

const (
	RemarkError RemarkSeverity = "error"
	RemarkNit   RemarkSeverity = "nit"
)

// MaxRemarks caps how many remarks a single grading call surfaces.
// The grader is instructed to pick the most actionable ones.
const MaxRemarks = 3

// Remark is one piece of qualitative feedback from the grader.
type Remark struct {
	Severity RemarkSeverity `json:"severity"`

	// Category is free text from the grader ("Topic Sentence",
	// "Conventions: commas", ...). Matched heuristically against rubric
	// categories during gap detection, never treated as a strict key.
	Category string `json:"category"`

	// ConcreteProblem states what is wrong in the student's text.
	ConcreteProblem string `json:"concreteProblem"`

	// CallToAction tells the student what to do about it.
	CallToAction string `json:"callToAction"`

	// SubstringOfInterest quotes the span of the submission the remark
	// refers to, when the grader identified one.
	SubstringOfInterest string `json:"substringOfInterest,omitempty"`
}
