package store

import (
	"context"
	"time"
)

// Attempt is one graded answer, as stored.
type Attempt struct {
	Sequence      int64
	Timestamp     time.Time
	RunID         string
	QuestionID    int
	Level         string
	Topic         string
	PromptTR      string
	MaskedEN      string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
	Similarity    float64
	Feedback      string
	VoiceInput    bool
}

// Reveal is one uncovered blank, as stored.
type Reveal struct {
	RunID      string
	QuestionID int
	HintIndex  int
	Word       string
}

// Dictation is one spoken utterance, as stored.
type Dictation struct {
	RunID      string
	QuestionID int
	Text       string
	Kind       string
}

// Stats summarizes the stored attempt history.
type Stats struct {
	Total          int
	Correct        int
	MeanSimilarity float64
	Reveals        int
}

// Accuracy returns the fraction of correct attempts, 0 when empty.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// AttemptRepo provides append and query access to the practice history.
type AttemptRepo interface {
	// AppendAttempt records a graded answer.
	AppendAttempt(ctx context.Context, a Attempt) error

	// AppendReveal records an uncovered blank.
	AppendReveal(ctx context.Context, r Reveal) error

	// AppendDictation records a spoken utterance.
	AppendDictation(ctx context.Context, d Dictation) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]Attempt, error)

	// Summary aggregates the full history.
	Summary(ctx context.Context) (Stats, error)
}
