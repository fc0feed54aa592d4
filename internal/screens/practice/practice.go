// Package practice implements the fill-by-listening exercise screen: a
// masked English sentence, a Turkish prompt, a typed-or-spoken answer box,
// and graded feedback.
package practice

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/exercise"
	"github.com/Imaliure/adaptive-language-learning/internal/feedback"
	"github.com/Imaliure/adaptive-language-learning/internal/recording"
	"github.com/Imaliure/adaptive-language-learning/internal/screen"
	"github.com/Imaliure/adaptive-language-learning/internal/speech"
	"github.com/Imaliure/adaptive-language-learning/internal/store"
	"github.com/Imaliure/adaptive-language-learning/internal/template"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/components"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/layout"
)

// Service is the slice of the backend client the screen needs.
type Service interface {
	RandomQuestion(ctx context.Context) (*api.Question, error)
	CheckAnswer(ctx context.Context, questionID int, userAnswer string) (*api.AnswerResult, error)
}

// Recorder is the slice of the recording session the screen needs.
type Recorder interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) (string, error)
	Idle() bool
}

// PracticeScreen implements screen.Screen for one practice run.
type PracticeScreen struct {
	svc      Service
	rec      Recorder
	speaker  speech.Speaker
	attempts store.AttemptRepo
	log      zerolog.Logger

	runID string
	round *exercise.Round
	line  components.MaskedLine
	input components.TextInput
	fb    []feedback.Item

	sentenceFocus bool
	status        string
	errMsg        string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen with injected dependencies.
func New(svc Service, rec Recorder, speaker speech.Speaker, attempts store.AttemptRepo, log zerolog.Logger) *PracticeScreen {
	return &PracticeScreen{
		svc:      svc,
		rec:      rec,
		speaker:  speaker,
		attempts: attempts,
		log:      log,
		runID:    uuid.New().String(),
		round:    exercise.NewRound(),
		input:    components.NewTextInput("Type or speak the English sentence...", 200),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(
		s.fetchQuestion(),
		s.input.Init(),
	)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Ctrl+N", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.round.Recording() {
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Stop recording"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.sentenceFocus {
		return []layout.KeyHint{
			{Key: "←→", Description: "Move"},
			{Key: "Enter", Description: "Reveal / speak"},
			{Key: "Tab", Description: "Answer box"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+R", Description: "Record"},
		{Key: "Tab", Description: "Sentence"},
	}
	if s.round.Phase() == exercise.PhaseReviewed {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+N", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)
	case gradeResultMsg:
		return s.handleGradeResult(msg)
	case recordingStartedMsg:
		return s.handleRecordingStarted(msg)
	case transcriptMsg:
		return s.handleTranscript(msg)
	case spokeMsg:
		if msg.Err != nil {
			s.log.Warn().Err(msg.Err).Msg("dictation failed")
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.round.CanEdit() && !s.sentenceFocus {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+r":
		return s.toggleRecording()
	case "ctrl+n":
		return s.nextQuestion()
	case "tab":
		if s.round.Recording() {
			return s, nil
		}
		s.sentenceFocus = !s.sentenceFocus
		s.line.Focused = s.sentenceFocus
		return s, nil
	}

	if s.sentenceFocus {
		return s.handleSentenceKey(key)
	}

	if key == "enter" {
		return s.submit()
	}

	if s.round.CanEdit() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.round.SetAnswer(s.input.Value())
		return s, cmd
	}
	return s, nil
}

// handleSentenceKey moves the word cursor and reveals or speaks the token
// under it.
func (s *PracticeScreen) handleSentenceKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "h":
		s.line.MoveLeft()
	case "right", "l":
		s.line.MoveRight()
	case "enter":
		tok, ok := s.line.Current()
		if !ok || !s.round.CanReveal() {
			return s, nil
		}
		if tok.Kind == template.TokenBlank {
			return s.revealAndSpeak(tok.HintIndex)
		}
		return s, s.speak(speech.Sanitize(tok.Text), "literal")
	}
	return s, nil
}

// revealAndSpeak uncovers a blank and then dictates the word. The reveal is
// applied before the speak command is issued, so the word is on screen by
// the time it is heard.
func (s *PracticeScreen) revealAndSpeak(hintIndex int) (screen.Screen, tea.Cmd) {
	tmpl := s.round.Template()
	if tmpl == nil {
		return s, nil
	}
	_, already := tmpl.Revealed(hintIndex)

	word, err := tmpl.Reveal(hintIndex)
	if err != nil {
		s.log.Warn().Err(err).Int("hint", hintIndex).Msg("reveal failed")
		return s, nil
	}

	// Only the first uncovering counts as hint usage; re-hearing the word
	// is free.
	if !already {
		q := s.round.Question()
		if err := s.attempts.AppendReveal(context.Background(), store.Reveal{
			RunID:      s.runID,
			QuestionID: q.ID,
			HintIndex:  hintIndex,
			Word:       word,
		}); err != nil {
			s.log.Warn().Err(err).Msg("persist reveal")
		}
	}

	return s, s.speak(speech.Sanitize(word), "blank")
}

// speak dictates text through the speech engine and records the dictation.
func (s *PracticeScreen) speak(text, kind string) tea.Cmd {
	if text == "" {
		return nil
	}
	q := s.round.Question()
	return func() tea.Msg {
		err := s.speaker.Speak(text)
		if err == nil {
			perr := s.attempts.AppendDictation(context.Background(), store.Dictation{
				RunID:      s.runID,
				QuestionID: q.ID,
				Text:       text,
				Kind:       kind,
			})
			if perr != nil {
				s.log.Warn().Err(perr).Msg("persist dictation")
			}
		}
		return spokeMsg{Err: err}
	}
}

func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	s.round.SetAnswer(s.input.Value())
	text, err := s.round.Submit()
	switch {
	case errors.Is(err, exercise.ErrEmptyAnswer):
		s.status = "Type or record an answer first."
		return s, nil
	case err != nil:
		return s, nil
	}

	s.status = "Checking..."
	q := s.round.Question()
	return s, func() tea.Msg {
		res, err := s.svc.CheckAnswer(context.Background(), q.ID, text)
		return gradeResultMsg{Result: res, Err: err}
	}
}

func (s *PracticeScreen) toggleRecording() (screen.Screen, tea.Cmd) {
	if s.round.Phase() != exercise.PhaseAnswering {
		return s, nil
	}

	if s.rec.Idle() {
		s.round.SetRecording(true)
		s.input.SetLocked(true)
		s.status = "Recording... press Ctrl+R to stop"
		return s, func() tea.Msg {
			return recordingStartedMsg{Err: s.rec.Start(context.Background())}
		}
	}

	s.status = "Transcribing..."
	return s, func() tea.Msg {
		text, err := s.rec.Stop(context.Background())
		return transcriptMsg{Text: text, Err: err}
	}
}

func (s *PracticeScreen) handleRecordingStarted(msg recordingStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.round.SetRecording(false)
		s.input.SetLocked(false)
		if errors.Is(msg.Err, recording.ErrPermissionDenied) {
			s.status = "Microphone unavailable. Check permissions."
		} else {
			s.status = "Could not start recording."
		}
		s.log.Warn().Err(msg.Err).Msg("recording start failed")
	}
	return s, nil
}

func (s *PracticeScreen) handleTranscript(msg transcriptMsg) (screen.Screen, tea.Cmd) {
	s.round.SetRecording(false)
	s.input.SetLocked(false)

	switch {
	case errors.Is(msg.Err, recording.ErrUnintelligible):
		s.status = "Couldn't make out any words. Try again."
	case msg.Err != nil:
		s.status = "Transcription failed."
		s.log.Warn().Err(msg.Err).Msg("transcription failed")
	default:
		s.round.ApplyTranscript(msg.Text)
		s.input.SetValue(s.round.Answer())
		s.status = ""
	}
	return s, nil
}

func (s *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.status = ""
	s.fb = nil
	s.round.Begin(*msg.Question, msg.Tmpl)
	s.line = components.NewMaskedLine(msg.Tmpl)
	s.line.Focused = s.sentenceFocus
	s.input = components.NewTextInput("Type or speak the English sentence...", 200)
	return s, s.input.Init()
}

func (s *PracticeScreen) handleGradeResult(msg gradeResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.round.Fail()
		s.status = "Couldn't reach the server. Try again."
		s.log.Warn().Err(msg.Err).Msg("grading failed")
		return s, nil
	}

	res := *msg.Result
	s.round.Grade(res)
	s.input.Submit(res.IsCorrect)
	s.fb = feedback.Classify(res.Feedback)
	s.status = ""

	q := s.round.Question()
	if err := s.attempts.AppendAttempt(context.Background(), store.Attempt{
		RunID:         s.runID,
		QuestionID:    q.ID,
		Level:         q.Level,
		Topic:         q.Topic,
		PromptTR:      q.Source,
		MaskedEN:      q.MaskedEN,
		UserAnswer:    res.UserAnswer,
		CorrectAnswer: res.CorrectAnswer,
		Correct:       res.IsCorrect,
		Similarity:    res.Similarity,
		Feedback:      res.Feedback,
		VoiceInput:    s.round.UsedVoice(),
	}); err != nil {
		s.log.Warn().Err(err).Msg("persist attempt")
	}

	return s, nil
}

func (s *PracticeScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	if !s.rec.Idle() {
		return s, nil
	}
	if err := s.round.Reload(); err != nil {
		return s, nil
	}
	s.speaker.Stop()
	return s, s.fetchQuestion()
}

func (s *PracticeScreen) fetchQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := s.svc.RandomQuestion(context.Background())
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		tmpl, err := template.Build(q.MaskedEN, templateHints(q.Hints))
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Question: q, Tmpl: tmpl}
	}
}

func templateHints(hints []api.Hint) []template.Hint {
	out := make([]template.Hint, 0, len(hints))
	for _, h := range hints {
		out = append(out, template.Hint{Word: h.Word})
	}
	return out
}
