// Package exercise holds the state of one fill-by-listening round: the
// current question, its masked template, the learner's answer draft, and the
// grading result. It is pure state; transport and audio live elsewhere.
package exercise

import (
	"errors"
	"strings"

	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/template"
)

// Phase is where the round currently stands.
type Phase int

const (
	// PhaseLoading covers the fetch of a new question.
	PhaseLoading Phase = iota
	// PhaseAnswering is the editable state.
	PhaseAnswering
	// PhaseChecking means a grading request is in flight.
	PhaseChecking
	// PhaseReviewed means the result arrived and is on screen.
	PhaseReviewed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAnswering:
		return "answering"
	case PhaseChecking:
		return "checking"
	case PhaseReviewed:
		return "reviewed"
	default:
		return "unknown"
	}
}

// ErrEmptyAnswer rejects submitting a blank draft.
var ErrEmptyAnswer = errors.New("answer is empty")

// ErrBusy rejects an operation while another is in flight.
var ErrBusy = errors.New("operation already in flight")

// Round is the state of one question attempt.
type Round struct {
	phase     Phase
	question  api.Question
	tmpl      *template.Template
	answer    string
	result    *api.AnswerResult
	recording bool
	usedVoice bool
}

// NewRound starts in the loading phase.
func NewRound() *Round {
	return &Round{phase: PhaseLoading}
}

// Begin installs a fetched question and its parsed template, resetting all
// per-round state.
func (r *Round) Begin(q api.Question, tmpl *template.Template) {
	r.question = q
	r.tmpl = tmpl
	r.answer = ""
	r.result = nil
	r.recording = false
	r.usedVoice = false
	r.phase = PhaseAnswering
}

// Reload returns to the loading phase for the next question. Allowed from
// any phase except while a grading request is in flight.
func (r *Round) Reload() error {
	if r.phase == PhaseChecking {
		return ErrBusy
	}
	r.phase = PhaseLoading
	return nil
}

// Phase reports the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Question returns the current question. Zero value while loading.
func (r *Round) Question() api.Question { return r.question }

// Template returns the masked sentence template, nil while loading.
func (r *Round) Template() *template.Template { return r.tmpl }

// Answer returns the current draft.
func (r *Round) Answer() string { return r.answer }

// Result returns the grading result, nil until reviewed.
func (r *Round) Result() *api.AnswerResult { return r.result }

// SetAnswer replaces the draft. Ignored outside the answering phase and
// while the microphone is live; a transcription that lands after recording
// stopped still applies because SetRecording(false) precedes it.
func (r *Round) SetAnswer(text string) {
	if r.phase != PhaseAnswering || r.recording {
		return
	}
	r.answer = text
}

// ApplyTranscript replaces the draft with recognized speech. A dictated
// answer supersedes whatever was typed before it.
func (r *Round) ApplyTranscript(text string) {
	if r.phase != PhaseAnswering {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	r.usedVoice = true
	r.answer = text
}

// UsedVoice reports whether any recognized speech made it into the draft
// this round.
func (r *Round) UsedVoice() bool { return r.usedVoice }

// SetRecording flags the microphone state. While live, typing and
// submission are disabled.
func (r *Round) SetRecording(on bool) { r.recording = on }

// Recording reports whether the microphone is live.
func (r *Round) Recording() bool { return r.recording }

// Submit validates the draft and moves to the checking phase. The trimmed
// draft is returned for the grading request.
func (r *Round) Submit() (string, error) {
	if r.phase == PhaseChecking {
		return "", ErrBusy
	}
	if r.phase != PhaseAnswering || r.recording {
		return "", ErrBusy
	}
	trimmed := strings.TrimSpace(r.answer)
	if trimmed == "" {
		return "", ErrEmptyAnswer
	}
	r.phase = PhaseChecking
	return trimmed, nil
}

// Grade installs the grading result. Only valid in the checking phase.
func (r *Round) Grade(res api.AnswerResult) {
	if r.phase != PhaseChecking {
		return
	}
	r.result = &res
	r.phase = PhaseReviewed
}

// Fail returns a checking round to the answering phase, keeping the draft,
// after a grading request error.
func (r *Round) Fail() {
	if r.phase == PhaseChecking {
		r.phase = PhaseAnswering
	}
}

// CanEdit reports whether keystrokes should reach the draft.
func (r *Round) CanEdit() bool {
	return r.phase == PhaseAnswering && !r.recording
}

// CanReveal reports whether blanks may be uncovered. Reveals stay available
// after grading so the learner can inspect what they missed.
func (r *Round) CanReveal() bool {
	return (r.phase == PhaseAnswering || r.phase == PhaseReviewed) && !r.recording
}
