package store

import (
	"context"
	"fmt"

	"github.com/Imaliure/adaptive-language-learning/ent"
	"github.com/Imaliure/adaptive-language-learning/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, a Attempt) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetRunID(a.RunID).
		SetQuestionID(a.QuestionID).
		SetLevel(a.Level).
		SetTopic(a.Topic).
		SetPromptTr(a.PromptTR).
		SetMaskedEn(a.MaskedEN).
		SetUserAnswer(a.UserAnswer).
		SetCorrectAnswer(a.CorrectAnswer).
		SetCorrect(a.Correct).
		SetSimilarity(a.Similarity).
		SetFeedback(a.Feedback).
		SetVoiceInput(a.VoiceInput).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendReveal(ctx context.Context, rv Reveal) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.RevealEvent.Create().
		SetSequence(seq).
		SetRunID(rv.RunID).
		SetQuestionID(rv.QuestionID).
		SetHintIndex(rv.HintIndex).
		SetWord(rv.Word).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append reveal: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendDictation(ctx context.Context, d Dictation) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.DictationEvent.Create().
		SetSequence(seq).
		SetRunID(d.RunID).
		SetQuestionID(d.QuestionID).
		SetText(d.Text).
		SetKind(d.Kind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append dictation: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, Attempt{
			Sequence:      row.Sequence,
			Timestamp:     row.Timestamp,
			RunID:         row.RunID,
			QuestionID:    row.QuestionID,
			Level:         row.Level,
			Topic:         row.Topic,
			PromptTR:      row.PromptTr,
			MaskedEN:      row.MaskedEn,
			UserAnswer:    row.UserAnswer,
			CorrectAnswer: row.CorrectAnswer,
			Correct:       row.Correct,
			Similarity:    row.Similarity,
			Feedback:      row.Feedback,
			VoiceInput:    row.VoiceInput,
		})
	}
	return out, nil
}

func (r *attemptRepo) Summary(ctx context.Context) (Stats, error) {
	total, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count attempts: %w", err)
	}

	correct, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count correct attempts: %w", err)
	}

	stats := Stats{Total: total, Correct: correct}

	if total > 0 {
		mean, err := r.client.AttemptEvent.Query().
			Aggregate(ent.Mean(attemptevent.FieldSimilarity)).
			Float64(ctx)
		if err != nil {
			return Stats{}, fmt.Errorf("mean similarity: %w", err)
		}
		stats.MeanSimilarity = mean
	}

	reveals, err := r.client.RevealEvent.Query().Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count reveals: %w", err)
	}
	stats.Reveals = reveals

	return stats, nil
}
