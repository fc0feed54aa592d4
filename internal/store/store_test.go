package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	attempts, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent on empty store: %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("expected empty history, got %d", len(attempts))
	}

	for i, correct := range []bool{true, false, true} {
		err := repo.AppendAttempt(ctx, Attempt{
			RunID:         "run-1",
			QuestionID:    10 + i,
			Level:         "A2",
			Topic:         "daily life",
			PromptTR:      "Okula giderim",
			MaskedEN:      "I __ to school",
			UserAnswer:    "I go to school",
			CorrectAnswer: "I go to school",
			Correct:       correct,
			Similarity:    0.9,
			Feedback:      "",
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	attempts, err = repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	// Newest first.
	if attempts[0].QuestionID != 12 || attempts[1].QuestionID != 11 {
		t.Errorf("order wrong: %d, %d", attempts[0].QuestionID, attempts[1].QuestionID)
	}
	if attempts[0].Sequence <= attempts[1].Sequence {
		t.Errorf("sequence not decreasing: %d then %d", attempts[0].Sequence, attempts[1].Sequence)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	if err := repo.AppendReveal(ctx, Reveal{RunID: "run-1", QuestionID: 1, HintIndex: 0, Word: "go"}); err != nil {
		t.Fatalf("append reveal: %v", err)
	}
	if err := repo.AppendDictation(ctx, Dictation{RunID: "run-1", QuestionID: 1, Text: "go", Kind: "blank"}); err != nil {
		t.Fatalf("append dictation: %v", err)
	}
	if err := repo.AppendAttempt(ctx, Attempt{
		RunID: "run-1", QuestionID: 1,
		PromptTR: "x", MaskedEN: "y", UserAnswer: "z",
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	attempts, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Two events preceded the attempt, so its sequence must be at least 3.
	if attempts[0].Sequence < 3 {
		t.Errorf("attempt sequence = %d, want >= 3", attempts[0].Sequence)
	}
}

func TestSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	stats, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary on empty store: %v", err)
	}
	if stats.Total != 0 || stats.Accuracy() != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, a := range []struct {
		correct bool
		sim     float64
	}{{true, 1.0}, {false, 0.5}} {
		err := repo.AppendAttempt(ctx, Attempt{
			RunID: "run-1", QuestionID: 1,
			PromptTR: "x", MaskedEN: "y", UserAnswer: "z",
			Correct: a.correct, Similarity: a.sim,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.AppendReveal(ctx, Reveal{RunID: "run-1", QuestionID: 1, Word: "go"}); err != nil {
		t.Fatal(err)
	}

	stats, err = repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if stats.Total != 2 || stats.Correct != 1 {
		t.Errorf("stats = %+v, want total 2 correct 1", stats)
	}
	if got := stats.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
	if stats.MeanSimilarity < 0.74 || stats.MeanSimilarity > 0.76 {
		t.Errorf("mean similarity = %v, want 0.75", stats.MeanSimilarity)
	}
	if stats.Reveals != 1 {
		t.Errorf("reveals = %d, want 1", stats.Reveals)
	}
}
