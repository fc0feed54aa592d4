package api

import (
	"bytes"
	"context"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAITranscriber transcribes dictation by calling the OpenAI Whisper API
// directly, skipping the backend's /speech-to-text endpoint. Used when an
// OPENAI_API_KEY is configured; useful when the backend runs without a local
// whisper model.
type OpenAITranscriber struct {
	client *openai.Client
	log    zerolog.Logger
}

// NewOpenAITranscriber creates a transcriber backed by the OpenAI API.
func NewOpenAITranscriber(apiKey string, log zerolog.Logger) *OpenAITranscriber {
	return &OpenAITranscriber{
		client: openai.NewClient(apiKey),
		log:    log,
	}
}

// Transcribe sends WAV audio to the Whisper API. Mirrors the backend
// contract: empty text is ("", nil), signalling unintelligible speech.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, wavData []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, transcribeTimeout)
	defer cancel()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "speech.wav",
		Reader:   bytes.NewReader(wavData),
		Language: "en",
	})
	if err != nil {
		t.log.Warn().Err(err).Msg("whisper API transcription failed")
		return "", &ConnectivityError{Op: "openai transcribe", Err: err}
	}

	text := strings.TrimSpace(resp.Text)
	t.log.Debug().Int("bytes", len(wavData)).Str("text", text).Msg("whisper API transcription done")
	return text, nil
}
