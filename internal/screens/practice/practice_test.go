package practice

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/exercise"
	"github.com/Imaliure/adaptive-language-learning/internal/feedback"
	"github.com/Imaliure/adaptive-language-learning/internal/recording"
	"github.com/Imaliure/adaptive-language-learning/internal/store"
)

// mockService implements Service for testing.
type mockService struct {
	question  *api.Question
	result    *api.AnswerResult
	qErr      error
	checkErr  error
	checkedID int
	checked   string
}

func (m *mockService) RandomQuestion(_ context.Context) (*api.Question, error) {
	if m.qErr != nil {
		return nil, m.qErr
	}
	return m.question, nil
}

func (m *mockService) CheckAnswer(_ context.Context, questionID int, userAnswer string) (*api.AnswerResult, error) {
	m.checkedID = questionID
	m.checked = userAnswer
	if m.checkErr != nil {
		return nil, m.checkErr
	}
	return m.result, nil
}

// mockRecorder implements Recorder for testing.
type mockRecorder struct {
	idle       bool
	startErr   error
	transcript string
	stopErr    error
}

func (m *mockRecorder) Start(_ context.Context) error {
	if m.startErr != nil {
		return m.startErr
	}
	m.idle = false
	return nil
}

func (m *mockRecorder) Stop(_ context.Context) (string, error) {
	m.idle = true
	return m.transcript, m.stopErr
}

func (m *mockRecorder) Idle() bool { return m.idle }

// mockSpeaker records utterances.
type mockSpeaker struct {
	spoken []string
}

func (m *mockSpeaker) Speak(text string) error {
	m.spoken = append(m.spoken, text)
	return nil
}
func (m *mockSpeaker) Stop() {}

// mockAttempts implements store.AttemptRepo for testing.
type mockAttempts struct {
	attempts   []store.Attempt
	reveals    []store.Reveal
	dictations []store.Dictation
}

func (m *mockAttempts) AppendAttempt(_ context.Context, a store.Attempt) error {
	m.attempts = append(m.attempts, a)
	return nil
}
func (m *mockAttempts) AppendReveal(_ context.Context, r store.Reveal) error {
	m.reveals = append(m.reveals, r)
	return nil
}
func (m *mockAttempts) AppendDictation(_ context.Context, d store.Dictation) error {
	m.dictations = append(m.dictations, d)
	return nil
}
func (m *mockAttempts) Recent(_ context.Context, _ int) ([]store.Attempt, error) {
	return m.attempts, nil
}
func (m *mockAttempts) Summary(_ context.Context) (store.Stats, error) {
	return store.Stats{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() *api.Question {
	return &api.Question{
		ID:        7,
		Level:     "A2",
		Topic:     "daily life",
		Source:    "Okula giderim",
		MaskedEN:  "I __ to school.",
		Hints:     []api.Hint{{Word: "go", Mask: "__"}},
		WordCount: 4,
	}
}

// testScreen builds a screen and drives it through the initial fetch.
func testScreen(t *testing.T) (*PracticeScreen, *mockService, *mockRecorder, *mockSpeaker, *mockAttempts) {
	t.Helper()
	svc := &mockService{
		question: testQuestion(),
		result:   &api.AnswerResult{IsCorrect: true, Similarity: 1},
	}
	rec := &mockRecorder{idle: true}
	spk := &mockSpeaker{}
	att := &mockAttempts{}

	s := New(svc, rec, spk, att, zerolog.Nop())
	msg := s.fetchQuestion()()
	updated, _ := s.Update(msg)
	return updated.(*PracticeScreen), svc, rec, spk, att
}

func TestQuestionFetchInstallsRound(t *testing.T) {
	s, _, _, _, _ := testScreen(t)

	if s.round.Phase() != exercise.PhaseAnswering {
		t.Fatalf("phase = %v, want answering", s.round.Phase())
	}
	if got := s.round.Question().ID; got != 7 {
		t.Errorf("question id = %d", got)
	}
	if s.round.Template() == nil || s.round.Template().Blanks() != 1 {
		t.Error("template not built from hints")
	}
}

func TestQuestionFetchFailureShowsError(t *testing.T) {
	svc := &mockService{qErr: errors.New("connection refused")}
	s := New(svc, &mockRecorder{idle: true}, &mockSpeaker{}, &mockAttempts{}, zerolog.Nop())

	msg := s.fetchQuestion()()
	updated, _ := s.Update(msg)
	s = updated.(*PracticeScreen)

	if s.errMsg == "" {
		t.Error("expected error message after failed fetch")
	}

	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Ctrl+N" {
		t.Errorf("hints = %+v, want Ctrl+N retry first", hints)
	}

	// Ctrl+N retries the fetch; a recovered server installs the round.
	svc.qErr = nil
	svc.question = testQuestion()
	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a fetch command on retry")
	}
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	if s.errMsg != "" {
		t.Errorf("errMsg = %q after successful retry", s.errMsg)
	}
	if s.round.Phase() != exercise.PhaseAnswering {
		t.Errorf("phase = %v, want answering after retry", s.round.Phase())
	}
}

func TestMalformedTemplateRejected(t *testing.T) {
	q := testQuestion()
	q.Hints = nil // blank present, no hint for it
	svc := &mockService{question: q}
	s := New(svc, &mockRecorder{idle: true}, &mockSpeaker{}, &mockAttempts{}, zerolog.Nop())

	msg := s.fetchQuestion()()
	ready, ok := msg.(questionReadyMsg)
	if !ok {
		t.Fatalf("unexpected msg type %T", msg)
	}
	if ready.Err == nil {
		t.Fatal("expected template build error for mismatched hints")
	}
}

func TestSubmitEmptyShowsStatus(t *testing.T) {
	s, svc, _, _, _ := testScreen(t)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	if cmd != nil {
		t.Error("empty submit must not issue a grading command")
	}
	if s.status == "" {
		t.Error("expected a validation message")
	}
	if svc.checked != "" {
		t.Error("grading endpoint must not be called")
	}
}

func TestSubmitAndGrade(t *testing.T) {
	s, svc, _, _, att := testScreen(t)

	for _, r := range "I go to school." {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*PracticeScreen)
	}

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a grading command")
	}
	if s.round.Phase() != exercise.PhaseChecking {
		t.Fatalf("phase = %v, want checking", s.round.Phase())
	}

	// Double submit while in flight is ignored.
	_, second := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if second != nil {
		t.Error("second submit while checking must be a no-op")
	}

	msg := cmd()
	updated, _ = s.Update(msg)
	s = updated.(*PracticeScreen)

	if svc.checkedID != 7 {
		t.Errorf("checked question id = %d", svc.checkedID)
	}
	if svc.checked != "I go to school." {
		t.Errorf("checked answer = %q", svc.checked)
	}
	if s.round.Phase() != exercise.PhaseReviewed {
		t.Fatalf("phase = %v, want reviewed", s.round.Phase())
	}
	if len(att.attempts) != 1 {
		t.Fatalf("persisted %d attempts, want 1", len(att.attempts))
	}
	if att.attempts[0].QuestionID != 7 || !att.attempts[0].Correct {
		t.Errorf("attempt = %+v", att.attempts[0])
	}
}

func TestGradeFailureKeepsDraft(t *testing.T) {
	s, svc, _, _, _ := testScreen(t)
	svc.checkErr = errors.New("timeout")

	for _, r := range "hello" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*PracticeScreen)
	}
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	msg := cmd()
	updated, _ = s.Update(msg)
	s = updated.(*PracticeScreen)

	if s.round.Phase() != exercise.PhaseAnswering {
		t.Fatalf("phase = %v, want answering after grade error", s.round.Phase())
	}
	if s.round.Answer() != "hello" {
		t.Errorf("draft lost: %q", s.round.Answer())
	}
	if s.status == "" {
		t.Error("expected an error status")
	}
}

func TestRecordingFlow(t *testing.T) {
	s, _, rec, _, _ := testScreen(t)
	rec.transcript = "I go to school"

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	if !s.round.Recording() {
		t.Fatal("recording flag not set")
	}
	msg := cmd()
	updated, _ = s.Update(msg)
	s = updated.(*PracticeScreen)

	// Typing while recording must not reach the draft.
	updated, _ = s.Update(keyPress('x'))
	s = updated.(*PracticeScreen)
	if s.input.Value() != "" {
		t.Errorf("input = %q, keystrokes must be dropped while recording", s.input.Value())
	}
	// Submit while recording is a no-op.
	_, submitCmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if submitCmd != nil {
		t.Error("submit while recording must be ignored")
	}

	// Stop and transcribe.
	updated, cmd = s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	msg = cmd()
	updated, _ = s.Update(msg)
	s = updated.(*PracticeScreen)

	if s.round.Recording() {
		t.Error("recording flag still set after stop")
	}
	if s.round.Answer() != "I go to school" {
		t.Errorf("answer = %q after transcription", s.round.Answer())
	}
	if s.input.Value() != "I go to school" {
		t.Errorf("input = %q after transcription", s.input.Value())
	}
}

func TestTranscriptionReplacesTypedDraft(t *testing.T) {
	s, _, rec, _, _ := testScreen(t)
	rec.transcript = "hello world"

	for _, r := range "typed draft" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*PracticeScreen)
	}
	if s.round.Answer() != "typed draft" {
		t.Fatalf("draft = %q", s.round.Answer())
	}

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)
	updated, cmd = s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	if s.round.Answer() != "hello world" {
		t.Errorf("answer = %q, want %q (dictation replaces the draft)", s.round.Answer(), "hello world")
	}
	if s.input.Value() != "hello world" {
		t.Errorf("input = %q, want %q", s.input.Value(), "hello world")
	}
}

func TestRecordingPermissionDenied(t *testing.T) {
	s, _, rec, _, _ := testScreen(t)
	rec.startErr = recording.ErrPermissionDenied

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	msg := cmd()
	updated, _ = s.Update(msg)
	s = updated.(*PracticeScreen)

	if s.round.Recording() {
		t.Error("recording flag must clear on denial")
	}
	if s.status == "" {
		t.Error("expected a microphone status message")
	}

	// Editing works again.
	updated, _ = s.Update(keyPress('a'))
	s = updated.(*PracticeScreen)
	if s.input.Value() != "a" {
		t.Errorf("input = %q, editing should resume", s.input.Value())
	}
}

func TestUnintelligibleTranscript(t *testing.T) {
	s, _, rec, _, _ := testScreen(t)
	rec.stopErr = recording.ErrUnintelligible

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	updated, cmd = s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	if s.round.Answer() != "" {
		t.Errorf("answer = %q, unintelligible speech must not change the draft", s.round.Answer())
	}
	if s.status == "" {
		t.Error("expected a try-again message")
	}
}

func TestRevealThenSpeak(t *testing.T) {
	s, _, _, spk, att := testScreen(t)

	// Focus the sentence and move onto the blank (token index 1).
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s = updated.(*PracticeScreen)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	// The reveal is applied before the speak command runs.
	if word, ok := s.round.Template().Revealed(0); !ok || word != "go" {
		t.Fatalf("blank not revealed before dictation, got %q %v", word, ok)
	}
	if len(att.reveals) != 1 || att.reveals[0].Word != "go" {
		t.Fatalf("reveal not persisted: %+v", att.reveals)
	}
	if len(spk.spoken) != 0 {
		t.Fatal("speech must not start until the command runs")
	}

	if cmd == nil {
		t.Fatal("expected a dictation command")
	}
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	if len(spk.spoken) != 1 || spk.spoken[0] != "go" {
		t.Errorf("spoken = %v", spk.spoken)
	}
	if len(att.dictations) != 1 || att.dictations[0].Kind != "blank" {
		t.Errorf("dictation not persisted: %+v", att.dictations)
	}
}

func TestRepeatedRevealPersistsOnce(t *testing.T) {
	s, _, _, spk, att := testScreen(t)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s = updated.(*PracticeScreen)

	for range 3 {
		updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		s = updated.(*PracticeScreen)
		if cmd == nil {
			t.Fatal("expected a dictation command")
		}
		updated, _ = s.Update(cmd())
		s = updated.(*PracticeScreen)
	}

	if len(att.reveals) != 1 {
		t.Errorf("reveals persisted = %d, want 1", len(att.reveals))
	}
	if len(spk.spoken) != 3 {
		t.Errorf("spoken %d times, want 3", len(spk.spoken))
	}
}

func TestSpeakLiteralWordSanitized(t *testing.T) {
	s, _, _, spk, _ := testScreen(t)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = updated.(*PracticeScreen)
	// Cursor starts on "I".
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a dictation command")
	}
	s.Update(cmd())

	if len(spk.spoken) != 1 || spk.spoken[0] != "i" {
		t.Errorf(`spoken = %v, want ["i"] (bare I lowercased)`, spk.spoken)
	}
}

func TestRevealIgnoredWhileRecording(t *testing.T) {
	s, _, _, _, att := testScreen(t)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	// Tab is ignored while recording, so force sentence focus directly.
	s.sentenceFocus = true
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s = updated.(*PracticeScreen)
	updated, revealCmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	if revealCmd != nil {
		t.Error("reveal while recording must be a no-op")
	}
	if len(att.reveals) != 0 {
		t.Errorf("reveals persisted while recording: %+v", att.reveals)
	}
}

func TestNextQuestionResets(t *testing.T) {
	s, svc, _, _, _ := testScreen(t)

	for _, r := range "x" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*PracticeScreen)
	}
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	svc.question = &api.Question{
		ID: 8, Source: "Su içerim", MaskedEN: "I drink water.",
	}
	updated, cmd = s.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	s = updated.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	if s.round.Question().ID != 8 {
		t.Errorf("question id = %d, want 8", s.round.Question().ID)
	}
	if s.round.Answer() != "" || s.input.Value() != "" {
		t.Error("draft not reset for the next question")
	}
	if s.round.Result() != nil {
		t.Error("result not reset for the next question")
	}
}

func TestViewShowsActionButtons(t *testing.T) {
	s, svc, _, _, _ := testScreen(t)
	svc.result = &api.AnswerResult{IsCorrect: true, Similarity: 1, UserAnswer: "x", CorrectAnswer: "x"}

	view := s.View(80, 24)
	if !strings.Contains(view, "Check (Enter)") {
		t.Error("answering view missing the check button")
	}
	if strings.Contains(view, "Next question") {
		t.Error("next button shown before review")
	}

	updated, _ := s.Update(keyPress('x'))
	s = updated.(*PracticeScreen)
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	view = s.View(80, 24)
	if !strings.Contains(view, "Next question (Ctrl+N)") {
		t.Error("reviewed view missing the next-question button")
	}
}

func TestFeedbackClassifiedOnWrongAnswer(t *testing.T) {
	s, svc, _, _, _ := testScreen(t)
	svc.result = &api.AnswerResult{
		IsCorrect:     false,
		Similarity:    0.82,
		Feedback:      "Typos: goo → go; Missing words: school",
		CorrectAnswer: "I go to school.",
		UserAnswer:    "I goo to",
	}

	for _, r := range "I goo to" {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*PracticeScreen)
	}
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*PracticeScreen)

	if len(s.fb) != 2 {
		t.Fatalf("classified %d items, want 2", len(s.fb))
	}
	if s.fb[0].Category != feedback.CategoryTypo {
		t.Errorf("first category = %v", s.fb[0].Category)
	}
	if s.fb[1].Category != feedback.CategoryMissingWord {
		t.Errorf("second category = %v", s.fb[1].Category)
	}
}
