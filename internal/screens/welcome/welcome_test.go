package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screen"
)

// stubScreen stands in for the quiz screen.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "quiz" }
func (s *stubScreen) Title() string                           { return "Tabela 1" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhases(t *testing.T) {
	w, _ := newTestWelcome()

	view := w.View(100, 30)
	assert.NotContains(t, view, "Pratique os conectivos")
	assert.Contains(t, view, "pressione qualquer tecla")

	sendTicks(w, 3)
	view = w.View(100, 30)
	assert.Contains(t, view, "Pratique os conectivos")
	assert.NotContains(t, view, "Enter verifica")

	sendTicks(w, 5)
	assert.Contains(t, w.View(100, 30), "Enter verifica")
}

func TestTicksStopAfterRules(t *testing.T) {
	w, _ := newTestWelcome()

	assert.NotNil(t, sendTicks(w, 7))
	assert.Nil(t, sendTicks(w, 2))
	assert.Equal(t, rulesAt, w.elapsed)
}

func TestKeypressReplacesWithNext(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Tabela 1", msg.Screen.Title())
	assert.Equal(t, 1, *calls)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 20)
	assert.Equal(t, 0, *calls)
}

func TestBannerFallsBackWhenNarrow(t *testing.T) {
	assert.Contains(t, RenderBanner(40), bannerCompact)
	assert.NotContains(t, RenderBanner(100), bannerCompact)
	assert.Empty(t, (&WelcomeScreen{}).Title())
}
