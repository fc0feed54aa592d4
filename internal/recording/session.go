// Package recording governs the microphone capture lifecycle: a small state
// machine that turns a spoken utterance into text via a transcription
// collaborator.
//
// States: Idle → Capturing → Transcribing → Idle on the success path.
// Permission denial and transcription failure both land back in Idle with the
// answer buffer untouched; nothing here is fatal.
package recording

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// State is the capture lifecycle state.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateTranscribing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateTranscribing:
		return "transcribing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrPermissionDenied means the capture device could not be acquired.
	// Recoverable: the session stays Idle and the user may retry.
	ErrPermissionDenied = errors.New("microphone unavailable or permission denied")

	// ErrUnintelligible means transcription succeeded but produced no text.
	// Recoverable, non-fatal; the answer buffer is left untouched.
	ErrUnintelligible = errors.New("could not understand the speech")
)

// Capture is one variant of speech capture. Implementations hold at most one
// live handle between Begin and End; End must release the handle on every
// path, including errors.
type Capture interface {
	// Begin acquires the capture device and starts recording.
	Begin(ctx context.Context) error

	// End stops recording, releases the device, and returns the captured
	// audio as a finalized WAV resource.
	End() ([]byte, error)

	// Active reports whether a capture handle is currently held.
	Active() bool
}

// Transcriber converts a WAV resource into text. Empty text signals
// unintelligible speech, not an error.
type Transcriber interface {
	Transcribe(ctx context.Context, wavData []byte) (string, error)
}

// Session is the recording state machine. It owns at most one active capture
// handle; Start is a no-op unless the session is Idle, so duplicate user taps
// can never leak a second open microphone stream.
type Session struct {
	mu          sync.Mutex
	state       State
	capture     Capture
	transcriber Transcriber
	log         zerolog.Logger
}

// NewSession creates an Idle session over the given capture variant.
func NewSession(capture Capture, transcriber Transcriber, log zerolog.Logger) *Session {
	return &Session{
		capture:     capture,
		transcriber: transcriber,
		log:         log,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Idle reports whether the session holds no capture and no pending
// transcription. Submission and buffer edits are only allowed while Idle.
func (s *Session) Idle() bool {
	return s.State() == StateIdle
}

// Start begins capturing. Valid only from Idle; calling it in any other state
// is a no-op. On permission denial the session stays Idle with no side
// effects and ErrPermissionDenied is returned.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		s.log.Debug().Stringer("state", s.state).Msg("start ignored: session not idle")
		return nil
	}

	if s.capture == nil {
		return fmt.Errorf("%w: no capture device", ErrPermissionDenied)
	}

	if err := s.capture.Begin(ctx); err != nil {
		s.log.Warn().Err(err).Msg("capture begin failed")
		if errors.Is(err, ErrPermissionDenied) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	s.state = StateCapturing
	s.log.Debug().Msg("capturing")
	return nil
}

// Stop finalizes the capture and submits the audio for transcription,
// blocking until text (or a failure) comes back. Valid only from Capturing;
// from any other state it is a no-op returning ("", nil).
//
// On success with non-empty trimmed text the text is returned for the caller
// to place in the answer buffer. Empty or unintelligible speech returns
// ErrUnintelligible. All paths release the capture handle and end Idle.
func (s *Session) Stop(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.state != StateCapturing {
		s.mu.Unlock()
		return "", nil
	}

	wavData, err := s.capture.End()
	if err != nil {
		s.state = StateIdle
		s.mu.Unlock()
		s.log.Warn().Err(err).Msg("capture finalize failed")
		return "", fmt.Errorf("finalize capture: %w", err)
	}

	s.state = StateTranscribing
	s.mu.Unlock()
	s.log.Debug().Int("bytes", len(wavData)).Msg("transcribing")

	// The transcriber bounds its own wait; the mutex is not held across the
	// network call so State() stays readable.
	text, err := s.transcriber.Transcribe(ctx, wavData)

	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()

	if err != nil {
		s.log.Warn().Err(err).Msg("transcription failed")
		return "", fmt.Errorf("transcribe: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Debug().Msg("transcription empty")
		return "", ErrUnintelligible
	}

	return text, nil
}
