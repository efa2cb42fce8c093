// Package welcome implements the splash screen shown before the first table.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screen"
	"github.com/abhisek/conectivo/internal/ui/layout"
	"github.com/abhisek/conectivo/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	rulesAt      = 800 * time.Millisecond
)

var rules = []string{
	"Complete a tabela: conectivo, categoria e uma frase de exemplo.",
	"Cada campo certo vale 1 ponto; as frases são validadas pelo servidor.",
	"Enter verifica as respostas. Ctrl+N sorteia outra tabela.",
}

type tickMsg time.Time

// WelcomeScreen shows the banner and the rules, then replaces itself
// with the screen built by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Qualquer tecla", Description: "Começar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= rulesAt {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

// transition skips any remaining animation; it fires at most once.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Pratique os conectivos da língua portuguesa"))
	}

	if w.elapsed >= rulesAt {
		sections = append(sections, "")
		for _, r := range rules {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render("• "+r))
		}
	}

	sections = append(sections, "", theme.Hint.Render("pressione qualquer tecla para começar"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
