package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // id > After
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per request purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// GradeEventData is the audit record of one graded submission.
// The normalized result is kept verbatim as JSON for later review;
// nothing in the pipeline reads it back.
type GradeEventData struct {
	UserID       string
	SubmissionID string
	Kind         string
	IsCorrect    bool
	Percentage   int
	SevereGap    bool
	ResultJSON   string
}

// GradeEventRecord is a stored graded-submission event.
type GradeEventRecord struct {
	ID        int64
	CreatedAt time.Time
	GradeEventData
}

// EventRepo provides append and query access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns stored LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// AppendGradeEvent records a graded-submission audit event.
	AppendGradeEvent(ctx context.Context, data GradeEventData) error

	// LatestGradeEvent returns the user's most recent grade event, or
	// (nil, nil) when the user has no graded submissions.
	LatestGradeEvent(ctx context.Context, userID string) (*GradeEventRecord, error)
}
