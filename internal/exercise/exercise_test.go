package exercise

import (
	"errors"
	"testing"

	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/template"
)

func beginRound(t *testing.T) *Round {
	t.Helper()
	tmpl, err := template.Build("I __ to school", []template.Hint{{Word: "go"}})
	if err != nil {
		t.Fatalf("build template: %v", err)
	}
	r := NewRound()
	r.Begin(api.Question{ID: 1, Source: "Okula giderim", MaskedEN: "I __ to school"}, tmpl)
	return r
}

func TestRoundLifecycle(t *testing.T) {
	r := NewRound()
	if r.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, want loading", r.Phase())
	}

	tmpl, _ := template.Build("I __ to school", []template.Hint{{Word: "go"}})
	r.Begin(api.Question{ID: 1}, tmpl)
	if r.Phase() != PhaseAnswering {
		t.Fatalf("phase = %v, want answering", r.Phase())
	}

	r.SetAnswer("I go to school")
	got, err := r.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got != "I go to school" {
		t.Errorf("submit text = %q", got)
	}
	if r.Phase() != PhaseChecking {
		t.Fatalf("phase = %v, want checking", r.Phase())
	}

	r.Grade(api.AnswerResult{IsCorrect: true, Similarity: 1})
	if r.Phase() != PhaseReviewed {
		t.Fatalf("phase = %v, want reviewed", r.Phase())
	}
	if r.Result() == nil || !r.Result().IsCorrect {
		t.Error("result not installed")
	}
}

func TestSubmitEmptyAnswer(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("   ")
	if _, err := r.Submit(); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("err = %v, want ErrEmptyAnswer", err)
	}
	if r.Phase() != PhaseAnswering {
		t.Errorf("phase changed on rejected submit: %v", r.Phase())
	}
}

func TestSubmitWhileChecking(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("I go to school")
	if _, err := r.Submit(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Submit(); !errors.Is(err, ErrBusy) {
		t.Errorf("second submit err = %v, want ErrBusy", err)
	}
}

func TestEditDisabledWhileRecording(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("draft")
	r.SetRecording(true)

	r.SetAnswer("overwritten")
	if r.Answer() != "draft" {
		t.Errorf("answer = %q, edits must be ignored while recording", r.Answer())
	}
	if r.CanEdit() {
		t.Error("CanEdit true while recording")
	}
	if r.CanReveal() {
		t.Error("CanReveal true while recording")
	}
	if _, err := r.Submit(); !errors.Is(err, ErrBusy) {
		t.Errorf("submit while recording err = %v, want ErrBusy", err)
	}

	r.SetRecording(false)
	r.ApplyTranscript("I go to school")
	if r.Answer() != "I go to school" {
		t.Errorf("answer = %q after transcript", r.Answer())
	}
}

func TestApplyTranscript(t *testing.T) {
	r := beginRound(t)

	r.ApplyTranscript("  hello  ")
	if r.Answer() != "hello" {
		t.Errorf("answer = %q, want %q", r.Answer(), "hello")
	}
	r.ApplyTranscript("")
	if r.Answer() != "hello" {
		t.Errorf("empty transcript changed draft: %q", r.Answer())
	}
	r.ApplyTranscript("world")
	if r.Answer() != "world" {
		t.Errorf("answer = %q, want %q", r.Answer(), "world")
	}
}

func TestTranscriptReplacesTypedDraft(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("typed draft")
	r.ApplyTranscript("hello world")
	if r.Answer() != "hello world" {
		t.Errorf("answer = %q, want %q (dictation replaces the draft)", r.Answer(), "hello world")
	}
}

func TestUsedVoiceTracking(t *testing.T) {
	r := beginRound(t)
	if r.UsedVoice() {
		t.Error("UsedVoice true before any transcript")
	}
	r.SetAnswer("typed")
	if r.UsedVoice() {
		t.Error("typing must not set UsedVoice")
	}
	r.ApplyTranscript("spoken")
	if !r.UsedVoice() {
		t.Error("UsedVoice false after transcript")
	}

	tmpl, _ := template.Build("She __ tea", []template.Hint{{Word: "drinks"}})
	r.Begin(api.Question{ID: 3}, tmpl)
	if r.UsedVoice() {
		t.Error("UsedVoice not reset by Begin")
	}
}

func TestGradeFailureReturnsToAnswering(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("I go to school")
	if _, err := r.Submit(); err != nil {
		t.Fatal(err)
	}

	r.Fail()
	if r.Phase() != PhaseAnswering {
		t.Fatalf("phase = %v, want answering after failure", r.Phase())
	}
	if r.Answer() != "I go to school" {
		t.Errorf("draft lost on failure: %q", r.Answer())
	}
}

func TestReloadBlockedWhileChecking(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("x")
	if _, err := r.Submit(); err != nil {
		t.Fatal(err)
	}
	if err := r.Reload(); !errors.Is(err, ErrBusy) {
		t.Errorf("reload err = %v, want ErrBusy", err)
	}

	r.Grade(api.AnswerResult{})
	if err := r.Reload(); err != nil {
		t.Errorf("reload after review: %v", err)
	}
	if r.Phase() != PhaseLoading {
		t.Errorf("phase = %v, want loading", r.Phase())
	}
}

func TestBeginResetsState(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("old draft")
	r.SetRecording(true)

	tmpl, _ := template.Build("She __ tea", []template.Hint{{Word: "drinks"}})
	r.Begin(api.Question{ID: 2}, tmpl)

	if r.Answer() != "" {
		t.Errorf("answer not reset: %q", r.Answer())
	}
	if r.Recording() {
		t.Error("recording flag not reset")
	}
	if r.Result() != nil {
		t.Error("result not reset")
	}
	if r.Question().ID != 2 {
		t.Errorf("question id = %d", r.Question().ID)
	}
}

func TestRevealAllowedAfterReview(t *testing.T) {
	r := beginRound(t)
	r.SetAnswer("x")
	r.Submit() //nolint:errcheck
	r.Grade(api.AnswerResult{IsCorrect: false})
	if !r.CanReveal() {
		t.Error("CanReveal false after review")
	}
	if r.CanEdit() {
		t.Error("CanEdit true after review")
	}
}
