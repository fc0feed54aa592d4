// Package audio provides the speech-capture variants behind the recording
// session: a native portaudio microphone recorder and a command-line
// fallback for hosts without a working portaudio device. Both produce mono
// 16kHz 16-bit PCM WAV.
package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/rs/zerolog"

	"github.com/Imaliure/adaptive-language-learning/internal/recording"
)

const (
	// SampleRate matches what the transcription service expects.
	SampleRate = 16000
	// Channels is mono capture.
	Channels = 1
	// FramesPerBuffer is the portaudio read chunk size.
	FramesPerBuffer = 1024

	// minSamples pads very short recordings with silence; recognizers
	// reject clips under ~100ms, so a stray tap still transcribes cleanly
	// (to nothing) instead of erroring.
	minSamples = SampleRate / 5 // 200ms

	// maxDuration caps a single capture.
	maxDuration = 30 * time.Second
)

// MicRecorder captures from the default input device via portaudio.
// It implements recording.Capture.
type MicRecorder struct {
	mu      sync.Mutex
	stream  *portaudio.Stream
	buffer  []float32
	samples []float32
	running bool
	done    chan struct{}
	log     zerolog.Logger
}

// NewMicRecorder initializes portaudio and returns a recorder. An
// initialization error means no usable capture device; callers fall back to
// the command-line variant.
func NewMicRecorder(log zerolog.Logger) (*MicRecorder, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	return &MicRecorder{
		buffer: make([]float32, FramesPerBuffer),
		log:    log,
	}, nil
}

// Begin opens the default input stream and starts the read loop.
func (r *MicRecorder) Begin(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	r.samples = make([]float32, 0, SampleRate*int(maxDuration.Seconds()))
	r.done = make(chan struct{})

	stream, err := portaudio.OpenDefaultStream(Channels, 0, SampleRate, FramesPerBuffer, r.buffer)
	if err != nil {
		return fmt.Errorf("%w: open input stream: %v", recording.ErrPermissionDenied, err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("%w: start input stream: %v", recording.ErrPermissionDenied, err)
	}

	r.stream = stream
	r.running = true
	go r.readLoop()

	return nil
}

func (r *MicRecorder) readLoop() {
	defer close(r.done)

	for {
		r.mu.Lock()
		running := r.running
		stream := r.stream
		r.mu.Unlock()

		if !running || stream == nil {
			return
		}

		available, err := stream.AvailableToRead()
		if err != nil || available == 0 {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if err := stream.Read(); err != nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		r.mu.Lock()
		if r.running {
			chunk := make([]float32, len(r.buffer))
			copy(chunk, r.buffer)
			r.samples = append(r.samples, chunk...)
		}
		r.mu.Unlock()
	}
}

// End stops the stream, releases the device, and returns the captured audio
// encoded as WAV. The stream is closed on every path.
func (r *MicRecorder) End() ([]byte, error) {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil, fmt.Errorf("no active capture")
	}

	r.running = false
	stream := r.stream
	r.stream = nil
	samples := r.samples
	r.samples = nil
	done := r.done
	r.mu.Unlock()

	// Wait for the read loop; it checks running every 10ms.
	if done != nil {
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
	}

	if stream != nil {
		stream.Stop()
		stream.Close()
	}

	if len(samples) < minSamples {
		samples = append(samples, make([]float32, minSamples-len(samples))...)
	}

	r.log.Debug().Int("samples", len(samples)).Msg("capture finalized")
	return EncodeWAV(samples, SampleRate)
}

// Active reports whether a capture handle is held.
func (r *MicRecorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Close releases portaudio. The recorder is unusable afterwards.
func (r *MicRecorder) Close() {
	if r.Active() {
		r.End() //nolint:errcheck
	}
	portaudio.Terminate()
}
