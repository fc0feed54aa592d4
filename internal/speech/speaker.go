package speech

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// Speaker voices text aloud.
type Speaker interface {
	// Speak starts voicing text, interrupting any utterance in progress.
	Speak(text string) error
	// Stop silences the current utterance, if any.
	Stop()
}

// engine describes one system TTS binary.
type engine struct {
	bin  string
	argv func(text string) []string
}

var engines = []engine{
	{bin: "say", argv: func(t string) []string { return []string{t} }},
	{bin: "espeak-ng", argv: func(t string) []string { return []string{"-v", "en", t} }},
	{bin: "espeak", argv: func(t string) []string { return []string{"-v", "en", t} }},
}

// ExecSpeaker shells out to the first available system TTS engine.
type ExecSpeaker struct {
	mu  sync.Mutex
	eng engine
	cur *exec.Cmd
	log zerolog.Logger
}

// NewExecSpeaker probes PATH for a supported engine.
func NewExecSpeaker(log zerolog.Logger) (*ExecSpeaker, error) {
	for _, e := range engines {
		if path, err := exec.LookPath(e.bin); err == nil {
			e.bin = path
			return &ExecSpeaker{eng: e, log: log}, nil
		}
	}
	return nil, fmt.Errorf("no text-to-speech engine found (tried say, espeak-ng, espeak)")
}

// Speak kills any running utterance and starts a new one. The process is
// reaped in the background; overlap is impossible because the previous
// process is killed before the new one starts.
func (s *ExecSpeaker) Speak(text string) error {
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.killLocked()

	cmd := exec.Command(s.eng.bin, s.eng.argv(text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start tts: %w", err)
	}
	s.cur = cmd
	go cmd.Wait() //nolint:errcheck

	s.log.Debug().Str("text", text).Msg("speaking")
	return nil
}

// Stop silences the current utterance.
func (s *ExecSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.killLocked()
}

func (s *ExecSpeaker) killLocked() {
	if s.cur != nil && s.cur.Process != nil {
		s.cur.Process.Kill() //nolint:errcheck
	}
	s.cur = nil
}

// NopSpeaker discards all utterances. Used when no engine is installed or
// speech is disabled; dictation requests still succeed silently.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string) error { return nil }
func (NopSpeaker) Stop()              {}
