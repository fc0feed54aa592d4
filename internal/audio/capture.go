package audio

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Imaliure/adaptive-language-learning/internal/recording"
)

// NewCapture selects a capture backend. LINGUA_CAPTURE forces one
// ("portaudio" or "cmdline"); otherwise the native recorder is tried first
// with the command-line recorder as fallback.
func NewCapture(log zerolog.Logger) (recording.Capture, error) {
	switch os.Getenv("LINGUA_CAPTURE") {
	case "portaudio":
		return NewMicRecorder(log)
	case "cmdline":
		return NewCmdRecorder(log)
	case "":
	default:
		return nil, fmt.Errorf("unknown LINGUA_CAPTURE value %q", os.Getenv("LINGUA_CAPTURE"))
	}

	mic, err := NewMicRecorder(log)
	if err == nil {
		return mic, nil
	}
	log.Warn().Err(err).Msg("portaudio unavailable, trying system recorder")

	cmdrec, cmdErr := NewCmdRecorder(log)
	if cmdErr != nil {
		return nil, fmt.Errorf("no capture backend: %v; %v", err, cmdErr)
	}
	return cmdrec, nil
}
