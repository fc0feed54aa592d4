package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Imaliure/adaptive-language-learning/internal/recording"
)

// CmdRecorder captures audio with a system recorder binary (arecord or sox's
// rec). It is the fallback when portaudio has no usable device; external
// tools handle device negotiation themselves.
type CmdRecorder struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	path    string
	bin     string
	argv    func(path string) []string
	running bool
	log     zerolog.Logger
}

// NewCmdRecorder probes PATH for a known recorder binary.
func NewCmdRecorder(log zerolog.Logger) (*CmdRecorder, error) {
	if bin, err := exec.LookPath("arecord"); err == nil {
		return &CmdRecorder{
			bin: bin,
			argv: func(path string) []string {
				return []string{"-q", "-f", "S16_LE", "-r", fmt.Sprint(SampleRate), "-c", fmt.Sprint(Channels), path}
			},
			log: log,
		}, nil
	}
	if bin, err := exec.LookPath("rec"); err == nil {
		return &CmdRecorder{
			bin: bin,
			argv: func(path string) []string {
				return []string{"-q", "-r", fmt.Sprint(SampleRate), "-c", fmt.Sprint(Channels), "-b", "16", path}
			},
			log: log,
		}, nil
	}
	return nil, fmt.Errorf("no system recorder found (tried arecord, rec)")
}

// Begin starts the recorder process writing to a temp file.
func (r *CmdRecorder) Begin(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("lingua-capture-%d.wav", time.Now().UnixNano()))
	cmd := exec.CommandContext(ctx, r.bin, r.argv(path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %v", recording.ErrPermissionDenied, r.bin, err)
	}

	r.cmd = cmd
	r.path = path
	r.running = true
	r.log.Debug().Str("bin", r.bin).Str("path", path).Msg("system recorder started")
	return nil
}

// End interrupts the recorder process and reads back the WAV it wrote. The
// temp file is removed on every path.
func (r *CmdRecorder) End() ([]byte, error) {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil, fmt.Errorf("no active capture")
	}
	cmd := r.cmd
	path := r.path
	r.cmd = nil
	r.running = false
	r.mu.Unlock()

	defer os.Remove(path)

	// SIGINT lets the recorder finalize its WAV header before exiting.
	if cmd.Process != nil {
		cmd.Process.Signal(syscall.SIGINT)
	}
	cmd.Wait() //nolint:errcheck

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("recorder wrote no data")
	}
	return data, nil
}

// Active reports whether the recorder process is running.
func (r *CmdRecorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
