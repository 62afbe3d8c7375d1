package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/scrivo/internal/mastery"
)

// MasteryRepo persists mastery records. It implements mastery.Store.
type MasteryRepo struct {
	db *sql.DB
}

// Get loads the record for a (user, lesson) pair, or (nil, nil) when
// the lesson was never attempted.
func (r *MasteryRepo) Get(ctx context.Context, userID, lessonID string) (*mastery.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT best_score, attempt_count, is_mastered, lp_awarded, updated_at
		 FROM mastery_records WHERE user_id = ? AND lesson_id = ?`,
		userID, lessonID)

	rec := &mastery.Record{UserID: userID, LessonID: lessonID}
	var mastered, awarded int
	var updatedAt string
	err := row.Scan(&rec.BestScore, &rec.AttemptCount, &mastered, &awarded, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query mastery record: %w", err)
	}

	rec.IsMastered = mastered != 0
	rec.LPAwarded = awarded != 0
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return rec, nil
}

// Put upserts a mastery record. Last write wins; a learner's attempts
// are sequential in practice, so no stricter discipline is applied.
func (r *MasteryRepo) Put(ctx context.Context, rec *mastery.Record) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mastery_records
			(user_id, lesson_id, best_score, attempt_count, is_mastered, lp_awarded, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			best_score = excluded.best_score,
			attempt_count = excluded.attempt_count,
			is_mastered = excluded.is_mastered,
			lp_awarded = excluded.lp_awarded,
			updated_at = excluded.updated_at`,
		rec.UserID, rec.LessonID, rec.BestScore, rec.AttemptCount,
		boolToInt(rec.IsMastered), boolToInt(rec.LPAwarded),
		rec.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert mastery record: %w", err)
	}
	return nil
}

// All returns every mastery record for a user, most recent first.
func (r *MasteryRepo) All(ctx context.Context, userID string) ([]mastery.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT lesson_id, best_score, attempt_count, is_mastered, lp_awarded, updated_at
		 FROM mastery_records WHERE user_id = ? ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}
	defer rows.Close()

	var out []mastery.Record
	for rows.Next() {
		rec := mastery.Record{UserID: userID}
		var mastered, awarded int
		var updatedAt string
		if err := rows.Scan(&rec.LessonID, &rec.BestScore, &rec.AttemptCount,
			&mastered, &awarded, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan mastery record: %w", err)
		}
		rec.IsMastered = mastered != 0
		rec.LPAwarded = awarded != 0
		rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}
