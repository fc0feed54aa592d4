package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zerolog.Nop())
}

func TestRandomQuestion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/random-question", r.URL.Path)
		io.WriteString(w, `{
			"id": 7,
			"level": "A2",
			"topic": "daily life",
			"tr": "Markete gidiyorum",
			"masked_en": "I __ to the _____",
			"hints": [{"word": "go", "mask": "__"}, {"word": "store", "mask": "_____"}],
			"word_count": 5
		}`)
	})

	q, err := c.RandomQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, q.ID)
	assert.Equal(t, "I __ to the _____", q.MaskedEN)
	require.Len(t, q.Hints, 2)
	assert.Equal(t, "store", q.Hints[1].Word)
}

func TestRandomQuestionBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing hints", `{"id": 1, "tr": "x", "masked_en": "a __"}`},
		{"empty source", `{"id": 1, "tr": "", "masked_en": "a __", "hints": []}`},
		{"hint without word", `{"id": 1, "tr": "x", "masked_en": "a __", "hints": [{"mask": "__"}]}`},
		{"not json", `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})
			_, err := c.RandomQuestion(context.Background())
			var perr *PayloadError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/check-answer", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 7, req["question_id"])
		assert.Equal(t, "I go to the store", req["user_answer"])

		io.WriteString(w, `{
			"is_correct": false,
			"similarity": 0.72,
			"feedback": "Missing key words: store",
			"correct_answer": "I go to the store",
			"user_answer": "I go to the"
		}`)
	})

	res, err := c.CheckAnswer(context.Background(), 7, "I go to the store")
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.InDelta(t, 0.72, res.Similarity, 1e-9)
	assert.Equal(t, "Missing key words: store", res.Feedback)
}

func TestCheckAnswerServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.CheckAnswer(context.Background(), 1, "answer")
	assert.True(t, IsConnectivity(err), "want connectivity error, got %v", err)
}

func TestTranscribe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/speech-to-text", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "speech.wav", header.Filename)

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("RIFFfake"), data)

		io.WriteString(w, `{"text": "  hello world  ", "confidence": 1.0, "message": "ok"}`)
	})

	text, err := c.Transcribe(context.Background(), []byte("RIFFfake"))
	require.NoError(t, err)
	// Trimming is the caller's contract; the client returns the wire text.
	assert.Equal(t, "  hello world  ", text)
}

func TestTranscribeEmptyTextIsNotAnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"text": "", "confidence": 0.0, "message": "No speech detected."}`)
	})

	text, err := c.Transcribe(context.Background(), []byte("RIFF"))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCheckServer(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{"current", "1.0.0", nil},
		{"newer", "1.2.0", nil},
		{"too old", "0.9.0", ErrServerIncompatible},
		{"garbage", "not-a-version", ErrServerIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `{"message": "English Learning API", "version": "`+tt.version+`", "whisper_available": true}`)
			})
			info, err := c.CheckServer(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, info.WhisperAvailable)
		})
	}
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		io.WriteString(w, `{"status": "healthy", "whisper_model": "base", "questions_loaded": 42}`)
	})

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, 42, h.QuestionsLoaded)
}

func TestConnectivityErrorOnRefusedConnection(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, zerolog.Nop())
	_, err := c.RandomQuestion(context.Background())

	var ce *ConnectivityError
	require.ErrorAs(t, err, &ce)
	assert.True(t, strings.Contains(ce.Error(), "random") || errors.Unwrap(ce) != nil)
}
