package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
		data.RequestBody, data.ResponseBody,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	query := `SELECT id, provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body, created_at
		FROM llm_events WHERE id > ? ORDER BY id DESC`
	args := []any{opts.After}
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEventRecord
	for rows.Next() {
		var rec LLMRequestEventRecord
		var success int
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs,
			&success, &rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody,
			&createdAt); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		rec.Success = success != 0
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose,
			COUNT(*),
			SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0),
			COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		FROM llm_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsageStats
	for rows.Next() {
		var s LLMUsageStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Failures,
			&s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *eventRepo) AppendGradeEvent(ctx context.Context, data GradeEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO grade_events
			(user_id, submission_id, kind, is_correct, percentage, severe_gap, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.UserID, data.SubmissionID, data.Kind,
		boolToInt(data.IsCorrect), data.Percentage, boolToInt(data.SevereGap),
		data.ResultJSON,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert grade event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestGradeEvent(ctx context.Context, userID string) (*GradeEventRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, submission_id, kind, is_correct, percentage, severe_gap, result, created_at
		 FROM grade_events WHERE user_id = ?
		 ORDER BY id DESC LIMIT 1`,
		userID)

	rec := &GradeEventRecord{}
	rec.UserID = userID
	var correct, severe int
	var createdAt string
	err := row.Scan(&rec.ID, &rec.SubmissionID, &rec.Kind, &correct,
		&rec.Percentage, &severe, &rec.ResultJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest grade event: %w", err)
	}
	rec.IsCorrect = correct != 0
	rec.SevereGap = severe != 0
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
