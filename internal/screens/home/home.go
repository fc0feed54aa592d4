// Package home is the entry screen: the practice menu plus a probe of the
// backend's health.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/Imaliure/adaptive-language-learning/internal/api"
	"github.com/Imaliure/adaptive-language-learning/internal/router"
	"github.com/Imaliure/adaptive-language-learning/internal/screen"
	"github.com/Imaliure/adaptive-language-learning/internal/screens/history"
	"github.com/Imaliure/adaptive-language-learning/internal/screens/practice"
	"github.com/Imaliure/adaptive-language-learning/internal/speech"
	"github.com/Imaliure/adaptive-language-learning/internal/store"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/components"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/theme"
)

// Prober is the slice of the backend client the home screen needs.
type Prober interface {
	Health(ctx context.Context) (*api.Health, error)
	CheckServer(ctx context.Context) (*api.ServerInfo, error)
}

// Deps carries everything the home screen hands down to child screens.
type Deps struct {
	Service  practice.Service
	Prober   Prober
	Recorder practice.Recorder
	Speaker  speech.Speaker
	Attempts store.AttemptRepo
	Log      zerolog.Logger
}

// healthMsg reports the startup probe of the backend.
type healthMsg struct {
	Health *api.Health
	Info   *api.ServerInfo
	Err    error
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	health *api.Health
	info   *api.ServerInfo
	probed bool
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(deps.Service, deps.Recorder, deps.Speaker, deps.Attempts, deps.Log),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Attempts)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.probe()
}

// probe checks version compatibility first, then health. Both results land
// in one message; a failed probe leaves practice available so the learner
// sees the real transport error in context.
func (h *HomeScreen) probe() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		info, err := h.deps.Prober.CheckServer(ctx)
		if err != nil {
			return healthMsg{Err: err}
		}
		hl, err := h.deps.Prober.Health(ctx)
		if err != nil {
			return healthMsg{Info: info, Err: err}
		}
		return healthMsg{Health: hl, Info: info}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case healthMsg:
		h.probed = true
		h.health = msg.Health
		h.info = msg.Info
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			h.deps.Log.Warn().Err(msg.Err).Msg("backend probe failed")
		} else {
			h.errMsg = ""
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("L I N G U A")
	subtitle := theme.Subtitle.Width(width).Render("Listen, fill the blanks, speak.")
	sections = append(sections, title, subtitle)

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.statusLine()))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	return "\n\n" + strings.Join(sections, "\n\n")
}

// statusLine summarizes the backend probe.
func (h *HomeScreen) statusLine() string {
	switch {
	case !h.probed:
		return theme.Hint.Render("Checking server...")
	case h.errMsg != "":
		return theme.Incorrect.Render("Server unreachable: ") + theme.Hint.Render(h.errMsg)
	case h.health != nil:
		whisper := theme.Incorrect.Render("speech-to-text off")
		if h.info != nil && h.info.WhisperAvailable {
			whisper = theme.Correct.Render("speech-to-text ready")
		}
		return theme.Hint.Render(fmt.Sprintf("%d questions loaded", h.health.QuestionsLoaded)) +
			theme.Hint.Render("  ·  ") + whisper
	default:
		return ""
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// ServerStatus returns a short status string for the header.
func (h *HomeScreen) ServerStatus() string {
	switch {
	case !h.probed:
		return "connecting"
	case h.errMsg != "":
		return "offline"
	case h.info != nil:
		return "online " + h.info.Version
	default:
		return ""
	}
}
