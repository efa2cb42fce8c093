package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conectivo/internal/logging"
	qz "github.com/abhisek/conectivo/internal/quiz"
	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screen"
	"github.com/abhisek/conectivo/internal/screens/quiz"
	"github.com/abhisek/conectivo/internal/screens/welcome"
	"github.com/abhisek/conectivo/internal/sentence"
	"github.com/abhisek/conectivo/internal/ui/layout"
)

const probeTimeout = 5 * time.Second

const (
	bannerUnavailable   = "Validador remoto indisponível; usando validação local"
	bannerNotConfigured = "Nenhum validador remoto configurado; usando validação local"
)

// Prober checks the remote validator's liveness.
type Prober interface {
	Probe(ctx context.Context) sentence.Status
}

// Options configures the application.
type Options struct {
	Session *qz.Session
	Prober  Prober // nil when no remote validator is configured
	Log     *logging.Logger
	Splash  bool   // Show the welcome screen first
}

// probeDoneMsg carries the startup liveness probe result.
type probeDoneMsg struct {
	Status sentence.Status
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prober Prober
	log    *logging.Logger
	banner string
	width  int
	height int
}

// newAppModel creates a new AppModel with the quiz screen, optionally
// behind the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	var first screen.Screen = quiz.New(opts.Session, log)
	if opts.Splash {
		q := first
		first = welcome.New(func() screen.Screen { return q })
	}
	m := AppModel{
		router: router.New(first),
		prober: opts.Prober,
		log:    log,
	}
	if m.prober == nil {
		m.banner = bannerNotConfigured
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.prober != nil {
		p := m.prober
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
			defer cancel()
			return probeDoneMsg{Status: p.Probe(ctx)}
		})
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case probeDoneMsg:
		if msg.Status.Available {
			m.banner = ""
			m.log.Info("remote validator available",
				"version", msg.Status.Version,
				"llm_available", msg.Status.LLMAvailable,
			)
		} else {
			m.banner = bannerUnavailable
			m.log.Warn("remote validator unavailable", "error", msg.Status.Err)
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// Banner returns the degraded-validation warning, or "" when the remote
// validator is available.
func (m AppModel) Banner() string {
	return m.banner
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	var score layout.Score
	if sp, ok := active.(screen.ScoreProvider); ok {
		score = sp.HeaderScore()
	}
	header := layout.RenderHeader(active.Title(), score, m.width)

	banner := ""
	if m.banner != "" {
		banner = layout.RenderBanner(m.banner, m.width)
	}

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if banner != "" {
		contentHeight -= lipgloss.Height(banner)
	}
	content := m.router.View(m.width, max(contentHeight, 0))

	return layout.RenderFrame(header, banner, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
