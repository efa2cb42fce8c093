// Package results implements the end-of-round modal.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/conectivo/internal/quiz"
	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screen"
	"github.com/abhisek/conectivo/internal/ui/components"
	"github.com/abhisek/conectivo/internal/ui/layout"
	"github.com/abhisek/conectivo/internal/ui/theme"
)

// RetryMsg is delivered to the screen below when the learner asks for a
// new table.
type RetryMsg struct{}

// ResultsScreen shows the outcome of a scoring pass.
type ResultsScreen struct {
	summary qz.Summary
	variant string
	buttons []components.Button
	focus   int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results modal for a completed pass.
func New(res qz.Result) *ResultsScreen {
	s := &ResultsScreen{
		summary: qz.Summarize(res),
		variant: res.Variant,
	}
	s.buttons = []components.Button{
		components.NewButton("Tentar novamente", true, retry),
		components.NewButton("Fechar", false, closeModal),
	}
	return s
}

func retry() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{Then: RetryMsg{}} }
}

func closeModal() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Resultado"
}

// Summary returns the banded summary shown by the modal.
func (s *ResultsScreen) Summary() qz.Summary {
	return s.summary
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Escolher"},
		{Key: "Enter", Description: "Confirmar"},
		{Key: "Esc", Description: "Fechar"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "shift+tab":
		s.setFocus(s.focus - 1)
		return s, nil
	case "right", "tab":
		s.setFocus(s.focus + 1)
		return s, nil
	}

	var cmd tea.Cmd
	s.buttons[s.focus], cmd = s.buttons[s.focus].Update(kmsg)
	return s, cmd
}

func (s *ResultsScreen) setFocus(i int) {
	n := len(s.buttons)
	s.focus = (i%n + n) % n
	for j := range s.buttons {
		s.buttons[j].Active = j == s.focus
	}
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	cardWidth := min(width-4, 60)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cardWidth - 4).Render("Fim da rodada · " + s.variant))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Width(cardWidth - 4).Align(lipgloss.Center).Render(
		fmt.Sprintf("Você fez %d de %d pontos", sum.Points, sum.Blanks)))
	b.WriteString("\n\n")

	ratio := 0.0
	if sum.Blanks > 0 {
		ratio = float64(sum.Points) / float64(sum.Blanks)
	}
	b.WriteString(components.NewProgressBar("", ratio, true, cardWidth-4).View())
	b.WriteString("\n\n")

	b.WriteString(bandStyle(sum.Band).Width(cardWidth - 4).Align(lipgloss.Center).Render(sum.Message()))
	b.WriteString("\n\n")

	btns := make([]string, 0, len(s.buttons)*2)
	for i, btn := range s.buttons {
		if i > 0 {
			btns = append(btns, "  ")
		}
		btns = append(btns, btn.View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(cardWidth-4, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, btns...)))

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func bandStyle(b qz.Band) lipgloss.Style {
	switch b {
	case qz.BandExcellent:
		return theme.Correct
	case qz.BandGood:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}
