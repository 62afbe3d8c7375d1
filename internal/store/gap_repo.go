package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/scrivo/internal/gaps"
)

// GapRepo persists per-submission gap snapshots. The gap list of each
// submission is stored as one JSON document, the way the ranked gate
// consumes it.
type GapRepo struct {
	db *sql.DB
}

// Append stores the gap snapshot of one graded submission.
func (r *GapRepo) Append(ctx context.Context, userID string, snap gaps.Snapshot) error {
	payload, err := json.Marshal(snap.Gaps)
	if err != nil {
		return fmt.Errorf("marshal gaps: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO gap_snapshots (user_id, submission_id, recorded_at, gaps)
		 VALUES (?, ?, ?, ?)`,
		userID, snap.SubmissionID,
		snap.RecordedAt.UTC().Format(time.RFC3339Nano),
		string(payload))
	if err != nil {
		return fmt.Errorf("insert gap snapshot: %w", err)
	}
	return nil
}

// Recent returns the user's last `window` snapshots, oldest first,
// the order the ranked gate expects.
func (r *GapRepo) Recent(ctx context.Context, userID string, window int) ([]gaps.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT submission_id, recorded_at, gaps
		 FROM gap_snapshots WHERE user_id = ?
		 ORDER BY id DESC LIMIT ?`,
		userID, window)
	if err != nil {
		return nil, fmt.Errorf("query gap snapshots: %w", err)
	}
	defer rows.Close()

	var newestFirst []gaps.Snapshot
	for rows.Next() {
		var snap gaps.Snapshot
		var recordedAt, payload string
		if err := rows.Scan(&snap.SubmissionID, &recordedAt, &payload); err != nil {
			return nil, fmt.Errorf("scan gap snapshot: %w", err)
		}
		snap.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
		if err := json.Unmarshal([]byte(payload), &snap.Gaps); err != nil {
			return nil, fmt.Errorf("unmarshal gaps: %w", err)
		}
		newestFirst = append(newestFirst, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to oldest-first.
	out := make([]gaps.Snapshot, len(newestFirst))
	for i, snap := range newestFirst {
		out[len(newestFirst)-1-i] = snap
	}
	return out, nil
}
