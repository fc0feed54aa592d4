package audio

import (
	"bytes"
	"testing"

	"github.com/go-audio/wav"
)

func TestEncodeWAVRoundTrip(t *testing.T) {
	samples := make([]float32, SampleRate) // 1s ramp
	for i := range samples {
		samples[i] = float32(i%200)/200 - 0.5
	}

	data, err := EncodeWAV(samples, SampleRate)
	if err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.SampleRate != SampleRate {
		t.Errorf("sample rate = %d, want %d", dec.SampleRate, SampleRate)
	}
	if dec.NumChans != Channels {
		t.Errorf("channels = %d, want %d", dec.NumChans, Channels)
	}
	if dec.BitDepth != 16 {
		t.Errorf("bit depth = %d, want 16", dec.BitDepth)
	}
	if len(buf.Data) != len(samples) {
		t.Errorf("sample count = %d, want %d", len(buf.Data), len(samples))
	}
}

func TestEncodeWAVClipsOutOfRange(t *testing.T) {
	data, err := EncodeWAV([]float32{2.0, -2.0, 0}, SampleRate)
	if err != nil {
		t.Fatalf("EncodeWAV: %v", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := buf.Data[0]; got != 32767 {
		t.Errorf("clipped positive = %d, want 32767", got)
	}
	if got := buf.Data[1]; got != -32767 {
		t.Errorf("clipped negative = %d, want -32767", got)
	}
	if got := buf.Data[2]; got != 0 {
		t.Errorf("zero sample = %d, want 0", got)
	}
}

func TestMemWriteSeeker(t *testing.T) {
	ws := &memWriteSeeker{}
	if _, err := ws.Write([]byte("hello world")); err != nil {
		t.Fatal(err)
	}
	if _, err := ws.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := ws.Write([]byte("HELLO")); err != nil {
		t.Fatal(err)
	}
	if got := string(ws.buf); got != "HELLO world" {
		t.Errorf("buf = %q, want %q", got, "HELLO world")
	}
}
