// Package api is the HTTP client for the two collaborator services: the
// question provider (random question, answer scoring) and the speech
// transcription endpoint. Transport details stay inside this package; the
// screens see typed results and the error taxonomy in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
)

// minServerVersion is the oldest question-provider version this client
// understands (feedback clause grammar, hint alignment).
const minServerVersion = "v1.0.0"

// transcribeTimeout bounds a single speech-to-text upload. Past it the
// recording session treats the dictation as failed and returns to idle.
const transcribeTimeout = 30 * time.Second

// Client talks to the practice backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// New creates a Client for the given base URL.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: transcribeTimeout},
		log:     log,
	}
}

// RandomQuestion fetches the next question. Payloads failing the integrity
// schema are rejected with a PayloadError so a bad question is never rendered.
func (c *Client) RandomQuestion(ctx context.Context) (*Question, error) {
	raw, err := c.getJSON(ctx, "/random-question")
	if err != nil {
		return nil, err
	}

	if err := validateQuestionPayload(raw); err != nil {
		return nil, &PayloadError{Op: "random question", Err: err}
	}

	var q Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, &PayloadError{Op: "random question", Err: err}
	}

	c.log.Debug().Int("question_id", q.ID).Str("level", q.Level).Msg("question loaded")
	return &q, nil
}

// CheckAnswer submits an answer for scoring.
func (c *Client) CheckAnswer(ctx context.Context, questionID int, userAnswer string) (*AnswerResult, error) {
	body, err := json.Marshal(checkAnswerRequest{QuestionID: questionID, UserAnswer: userAnswer})
	if err != nil {
		return nil, fmt.Errorf("marshal check-answer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check-answer", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build check-answer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req, "check answer")
	if err != nil {
		return nil, err
	}

	var result AnswerResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &PayloadError{Op: "check answer", Err: err}
	}

	c.log.Debug().
		Int("question_id", questionID).
		Bool("correct", result.IsCorrect).
		Float64("similarity", result.Similarity).
		Msg("answer checked")
	return &result, nil
}

// Transcribe uploads a mono 16kHz 16-bit PCM WAV and returns the recognized
// text. Empty text means the speech was unintelligible; that is reported as
// ("", nil), not as an error.
func (c *Client) Transcribe(ctx context.Context, wavData []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "speech.wav")
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(wavData); err != nil {
		return "", fmt.Errorf("write upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close upload form: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, transcribeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/speech-to-text", &buf)
	if err != nil {
		return "", fmt.Errorf("build transcribe request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := c.do(req, "transcribe")
	if err != nil {
		return "", err
	}

	var t transcription
	if err := json.Unmarshal(raw, &t); err != nil {
		return "", &PayloadError{Op: "transcribe", Err: err}
	}

	c.log.Debug().Int("bytes", len(wavData)).Str("text", t.Text).Msg("transcription done")
	return t.Text, nil
}

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	raw, err := c.getJSON(ctx, "/health")
	if err != nil {
		return nil, err
	}
	var h Health
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, &PayloadError{Op: "health", Err: err}
	}
	return &h, nil
}

// CheckServer fetches the server banner and rejects servers older than
// minServerVersion.
func (c *Client) CheckServer(ctx context.Context) (*ServerInfo, error) {
	raw, err := c.getJSON(ctx, "/")
	if err != nil {
		return nil, err
	}
	var info ServerInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, &PayloadError{Op: "server info", Err: err}
	}

	v := info.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Compare(v, minServerVersion) < 0 {
		return &info, fmt.Errorf("%w: server %q, need >= %s", ErrServerIncompatible, info.Version, minServerVersion)
	}
	return &info, nil
}

// getJSON issues a GET and returns the raw body.
func (c *Client) getJSON(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	return c.do(req, "GET "+path)
}

// do executes a request and maps failures into the package error taxonomy.
func (c *Client) do(req *http.Request, op string) (json.RawMessage, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("request failed")
		return nil, &ConnectivityError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("op", op).Msg("server error")
		return nil, &ConnectivityError{Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return body, nil
}
