package recording

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// fakeCapture counts handle activity so tests can assert the at-most-one
// handle invariant.
type fakeCapture struct {
	beginErr   error
	endErr     error
	wav        []byte
	beginCalls int
	endCalls   int
	active     bool
}

func (f *fakeCapture) Begin(context.Context) error {
	f.beginCalls++
	if f.beginErr != nil {
		return f.beginErr
	}
	f.active = true
	return nil
}

func (f *fakeCapture) End() ([]byte, error) {
	f.endCalls++
	f.active = false
	if f.endErr != nil {
		return nil, f.endErr
	}
	return f.wav, nil
}

func (f *fakeCapture) Active() bool { return f.active }

type fakeTranscriber struct {
	text string
	err  error
	got  []byte
}

func (f *fakeTranscriber) Transcribe(_ context.Context, wavData []byte) (string, error) {
	f.got = wavData
	return f.text, f.err
}

func newTestSession(fc *fakeCapture, tr *fakeTranscriber) *Session {
	return NewSession(fc, tr, zerolog.Nop())
}

func TestStartFromIdle(t *testing.T) {
	fc := &fakeCapture{}
	s := newTestSession(fc, &fakeTranscriber{})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateCapturing {
		t.Errorf("state = %v, want capturing", s.State())
	}
}

func TestDoubleStartIsNoop(t *testing.T) {
	fc := &fakeCapture{}
	s := newTestSession(fc, &fakeTranscriber{})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("second start should be a no-op, got %v", err)
	}
	if fc.beginCalls != 1 {
		t.Errorf("begin calls = %d, want 1 (exactly one active capture)", fc.beginCalls)
	}
	if s.State() != StateCapturing {
		t.Errorf("state = %v, want capturing", s.State())
	}
}

func TestStartPermissionDenied(t *testing.T) {
	fc := &fakeCapture{beginErr: ErrPermissionDenied}
	s := newTestSession(fc, &fakeTranscriber{})

	err := s.Start(context.Background())
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle after denial", s.State())
	}
	// Denial must leave no capture handle behind.
	if fc.Active() {
		t.Error("capture handle left active after denial")
	}
}

func TestStopWhileIdleIsNoop(t *testing.T) {
	fc := &fakeCapture{}
	s := newTestSession(fc, &fakeTranscriber{})

	text, err := s.Stop(context.Background())
	if err != nil || text != "" {
		t.Fatalf("stop while idle = (%q, %v), want no-op", text, err)
	}
	if fc.endCalls != 0 {
		t.Errorf("end calls = %d, want 0", fc.endCalls)
	}
}

func TestStopTranscribesAndTrims(t *testing.T) {
	fc := &fakeCapture{wav: []byte("RIFF")}
	tr := &fakeTranscriber{text: "  hello world  "}
	s := newTestSession(fc, tr)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	text, err := s.Stop(context.Background())
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if text != "hello world" {
		t.Errorf("text = %q, want %q", text, "hello world")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if string(tr.got) != "RIFF" {
		t.Errorf("transcriber received %q", tr.got)
	}
}

func TestStopEmptyTextIsUnintelligible(t *testing.T) {
	fc := &fakeCapture{wav: []byte("RIFF")}
	tr := &fakeTranscriber{text: "   "}
	s := newTestSession(fc, tr)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	text, err := s.Stop(context.Background())
	if !errors.Is(err, ErrUnintelligible) {
		t.Fatalf("err = %v, want ErrUnintelligible", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestStopNearZeroAudio(t *testing.T) {
	// A stop with essentially no captured audio must not fault; it surfaces
	// as unintelligible speech.
	fc := &fakeCapture{wav: []byte{}}
	tr := &fakeTranscriber{text: ""}
	s := newTestSession(fc, tr)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err := s.Stop(context.Background())
	if !errors.Is(err, ErrUnintelligible) {
		t.Fatalf("err = %v, want ErrUnintelligible", err)
	}
}

func TestStopTranscriberFailureReleasesHandle(t *testing.T) {
	fc := &fakeCapture{wav: []byte("RIFF")}
	tr := &fakeTranscriber{err: errors.New("upstream down")}
	s := newTestSession(fc, tr)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err := s.Stop(context.Background())
	if err == nil {
		t.Fatal("expected transcription failure")
	}
	if errors.Is(err, ErrUnintelligible) {
		t.Errorf("transport failure must not classify as unintelligible: %v", err)
	}
	if fc.Active() {
		t.Error("capture handle not released")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestStopCaptureFinalizeFailure(t *testing.T) {
	fc := &fakeCapture{endErr: errors.New("stream gone")}
	s := newTestSession(fc, &fakeTranscriber{})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err := s.Stop(context.Background())
	if err == nil {
		t.Fatal("expected finalize failure")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if fc.Active() {
		t.Error("capture handle not released")
	}
}

func TestStartAfterFullCycle(t *testing.T) {
	fc := &fakeCapture{wav: []byte("RIFF")}
	tr := &fakeTranscriber{text: "again"}
	s := newTestSession(fc, tr)

	for i := 0; i < 2; i++ {
		if err := s.Start(context.Background()); err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
		if _, err := s.Stop(context.Background()); err != nil {
			t.Fatalf("stop %d: %v", i, err)
		}
	}
	if fc.beginCalls != 2 || fc.endCalls != 2 {
		t.Errorf("begin/end = %d/%d, want 2/2", fc.beginCalls, fc.endCalls)
	}
}
