package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/conectivo/internal/screen"
)

type pingMsg struct{}

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushPop(t *testing.T) {
	quiz := &stubScreen{title: "Tabela 1"}
	r := New(quiz)

	results := &stubScreen{title: "Resultado"}
	r.Update(PushScreenMsg{Screen: results})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Resultado", r.Active().Title())
	assert.True(t, results.initRan)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Tabela 1", r.Active().Title())
	assert.Empty(t, quiz.got)
}

func TestPopDeliversFollowUp(t *testing.T) {
	quiz := &stubScreen{title: "Tabela 1"}
	r := New(quiz)
	r.Push(&stubScreen{title: "Resultado"})

	r.Update(PopScreenMsg{Then: pingMsg{}})

	assert.Equal(t, "Tabela 1", r.Active().Title())
	assert.Equal(t, []tea.Msg{pingMsg{}}, quiz.got)
}

func TestPopNoopAtBottom(t *testing.T) {
	quiz := &stubScreen{title: "Tabela 1"}
	r := New(quiz)

	r.Update(PopScreenMsg{Then: pingMsg{}})

	assert.Equal(t, 1, r.Depth())
	assert.Empty(t, quiz.got)
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "Tabela 1"})
	r.Push(&stubScreen{title: "Resultado"})

	next := &stubScreen{title: "Tabela 2"}
	r.Update(ReplaceScreenMsg{Screen: next})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Tabela 2", r.Active().Title())
	assert.True(t, next.initRan)
}

func TestUpdateForwardsToActive(t *testing.T) {
	bottom := &stubScreen{title: "Tabela 1"}
	r := New(bottom)
	top := &stubScreen{title: "Resultado"}
	r.Push(top)

	r.Update(pingMsg{})

	assert.Len(t, top.got, 1)
	assert.Empty(t, bottom.got)
	assert.Equal(t, "Resultado", r.View(80, 24))
}
