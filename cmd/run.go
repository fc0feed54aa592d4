package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/app"
	"github.com/Imaliure/adaptive-language-learning/internal/audio"
	"github.com/Imaliure/adaptive-language-learning/internal/config"
	"github.com/Imaliure/adaptive-language-learning/internal/logging"
	"github.com/Imaliure/adaptive-language-learning/internal/recording"
	"github.com/Imaliure/adaptive-language-learning/internal/speech"
	"github.com/Imaliure/adaptive-language-learning/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.FromEnv()
	if s, _ := cmd.Flags().GetString("server"); s != "" {
		cfg.ServerURL = s
	}

	log, closeLog, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = logging.Discard()
	} else {
		defer closeLog()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := api.New(cfg.ServerURL, log)

	opts := app.Options{
		Service:  client,
		Prober:   client,
		Attempts: st.Attempts(),
		Speaker:  newSpeaker(cfg, log),
		Recorder: newRecorder(cfg, client, log),
		Log:      log,
	}

	return app.Run(opts)
}

// newSpeaker builds the dictation engine, silent when disabled or missing.
func newSpeaker(cfg config.Config, log zerolog.Logger) speech.Speaker {
	if !cfg.SpeechEnabled {
		return speech.NopSpeaker{}
	}
	spk, err := speech.NewExecSpeaker(log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Text-to-speech unavailable:", err)
		return speech.NopSpeaker{}
	}
	return spk
}

// newRecorder builds the speech-capture pipeline. With OPENAI_API_KEY set,
// transcription goes straight to Whisper instead of through the backend.
func newRecorder(cfg config.Config, client *api.Client, log zerolog.Logger) *recording.Session {
	capture, err := audio.NewCapture(log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech capture unavailable:", err)
		fmt.Fprintln(os.Stderr, "You can still type your answers.")
		capture = nil
	}

	var transcriber recording.Transcriber = client
	if cfg.OpenAIKey != "" {
		transcriber = api.NewOpenAITranscriber(cfg.OpenAIKey, log)
	}

	return recording.NewSession(capture, transcriber, log)
}
