package practice

import (
	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/template"
)

// questionReadyMsg is sent when the next question has been fetched and its
// template parsed.
type questionReadyMsg struct {
	Question *api.Question
	Tmpl     *template.Template
	Err      error
}

// gradeResultMsg is sent when the grading request completes.
type gradeResultMsg struct {
	Result *api.AnswerResult
	Err    error
}

// recordingStartedMsg is sent after the microphone open attempt.
type recordingStartedMsg struct {
	Err error
}

// transcriptMsg is sent when a stopped recording finished transcribing.
type transcriptMsg struct {
	Text string
	Err  error
}

// spokeMsg is sent after a dictation request was handed to the speech
// engine. Err is informational; dictation failures never block the round.
type spokeMsg struct {
	Err error
}
