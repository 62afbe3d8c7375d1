package mastery

import (
	"context"
	"errors"
	"testing"
)

// memStore implements Store in memory for ledger tests.
type memStore struct {
	records map[string]*Record
	putErr  error
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*Record)}
}

func (m *memStore) Get(_ context.Context, userID, lessonID string) (*Record, error) {
	rec, ok := m.records[userID+"/"+lessonID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memStore) Put(_ context.Context, rec *Record) error {
	if m.putErr != nil {
		return m.putErr
	}
	cp := *rec
	m.records[rec.UserID+"/"+rec.LessonID] = &cp
	return nil
}

func TestRecordAttemptProgression(t *testing.T) {
	ledger := NewLedger(newMemStore(), DefaultConfig())
	ctx := context.Background()

	steps := []struct {
		score         int
		bestScore     int
		attempts      int
		newlyMastered bool
		lpEarned      int
	}{
		{85, 85, 1, false, 0},
		{92, 92, 2, true, 25},
		{95, 95, 3, false, 0}, // already mastered, no second reward
		{70, 95, 4, false, 0}, // best score never drops
	}

	for i, step := range steps {
		outcome, err := ledger.RecordAttempt(ctx, "u1", "thesis-statements", step.score)
		if err != nil {
			t.Fatalf("step %d: RecordAttempt: %v", i, err)
		}
		if outcome.BestScore != step.bestScore {
			t.Errorf("step %d: BestScore = %d, want %d", i, outcome.BestScore, step.bestScore)
		}
		if outcome.AttemptCount != step.attempts {
			t.Errorf("step %d: AttemptCount = %d, want %d", i, outcome.AttemptCount, step.attempts)
		}
		if outcome.NewlyMastered != step.newlyMastered {
			t.Errorf("step %d: NewlyMastered = %v, want %v", i, outcome.NewlyMastered, step.newlyMastered)
		}
		if outcome.LPEarned != step.lpEarned {
			t.Errorf("step %d: LPEarned = %d, want %d", i, outcome.LPEarned, step.lpEarned)
		}
	}
}

func TestRecordAttemptThresholdBoundary(t *testing.T) {
	ledger := NewLedger(newMemStore(), DefaultConfig())
	ctx := context.Background()

	outcome, err := ledger.RecordAttempt(ctx, "u1", "l1", 89)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if outcome.IsMastered {
		t.Error("89 mastered at threshold 90")
	}

	outcome, err = ledger.RecordAttempt(ctx, "u1", "l2", 90)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if !outcome.NewlyMastered {
		t.Error("90 did not master at threshold 90; boundary must count")
	}
}

func TestRecordAttemptClampsScore(t *testing.T) {
	ledger := NewLedger(newMemStore(), DefaultConfig())
	ctx := context.Background()

	outcome, err := ledger.RecordAttempt(ctx, "u1", "l1", 130)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if outcome.BestScore != 100 {
		t.Errorf("BestScore = %d, want clamped 100", outcome.BestScore)
	}

	outcome, err = ledger.RecordAttempt(ctx, "u1", "l2", -5)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if outcome.BestScore != 0 {
		t.Errorf("BestScore = %d, want clamped 0", outcome.BestScore)
	}
}

func TestRecordAttemptStoreFailureKeepsOutcome(t *testing.T) {
	st := newMemStore()
	st.putErr = errors.New("disk full")
	ledger := NewLedger(st, DefaultConfig())

	outcome, err := ledger.RecordAttempt(context.Background(), "u1", "l1", 95)
	if err == nil {
		t.Fatal("expected write error")
	}
	if outcome == nil {
		t.Fatal("outcome must accompany a write error; the grade stands")
	}
	if !outcome.NewlyMastered || outcome.LPEarned != 25 {
		t.Errorf("outcome = %+v, want mastery with LP despite write failure", outcome)
	}
}

func TestMastered(t *testing.T) {
	st := newMemStore()
	ledger := NewLedger(st, DefaultConfig())
	ctx := context.Background()

	mastered, err := ledger.Mastered(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("Mastered: %v", err)
	}
	if mastered {
		t.Error("unattempted lesson reported mastered")
	}

	if _, err := ledger.RecordAttempt(ctx, "u1", "l1", 91); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	mastered, err = ledger.Mastered(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("Mastered: %v", err)
	}
	if !mastered {
		t.Error("mastered lesson not reported")
	}
}
