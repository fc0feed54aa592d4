package api

// Hint is one masked word of a question template. Mask is the run of
// underscores the server substituted for the word.
type Hint struct {
	Word string `json:"word"`
	Mask string `json:"mask"`
}

// Question is an exercise item as served by the question provider. It is
// immutable once loaded and replaced wholesale on "next question".
type Question struct {
	ID        int    `json:"id"`
	Level     string `json:"level"`
	Topic     string `json:"topic"`
	Source    string `json:"tr"`
	MaskedEN  string `json:"masked_en"`
	Hints     []Hint `json:"hints"`
	WordCount int    `json:"word_count"`
}

// AnswerResult is the scoring service's verdict for one submission.
type AnswerResult struct {
	IsCorrect     bool    `json:"is_correct"`
	Similarity    float64 `json:"similarity"`
	Feedback      string  `json:"feedback"`
	CorrectAnswer string  `json:"correct_answer"`
	UserAnswer    string  `json:"user_answer"`
}

// checkAnswerRequest is the POST /check-answer body.
type checkAnswerRequest struct {
	QuestionID int    `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

// transcription is the POST /speech-to-text response. An empty Text signals
// unintelligible speech, not an error.
type transcription struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}

// Health is the GET /health response.
type Health struct {
	Status          string `json:"status"`
	WhisperModel    string `json:"whisper_model"`
	QuestionsLoaded int    `json:"questions_loaded"`
}

// ServerInfo is the GET / response, used for the version compatibility gate.
type ServerInfo struct {
	Message          string `json:"message"`
	Version          string `json:"version"`
	WhisperAvailable bool   `json:"whisper_available"`
}
