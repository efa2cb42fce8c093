package quiz

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/conectivo/internal/catalog"
	qz "github.com/abhisek/conectivo/internal/quiz"
	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screens/results"
	"github.com/abhisek/conectivo/internal/sentence"
	"github.com/abhisek/conectivo/internal/ui/components"
)

// gatedValidator blocks each call until released.
type gatedValidator struct {
	started chan struct{}
	release chan struct{}
}

func newGatedValidator() *gatedValidator {
	return &gatedValidator{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (g *gatedValidator) Validate(_ context.Context, s, c string) (sentence.Verdict, error) {
	g.started <- struct{}{}
	<-g.release
	return sentence.ValidateLocal(s, c), nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func typeText(s *QuizScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func testScreen(t *testing.T, v sentence.Validator) (*QuizScreen, *qz.Session) {
	t.Helper()
	sess, err := qz.NewSession(catalog.Variants(), v,
		qz.WithVariant(0),
		qz.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)
	s := New(sess, nil)
	s.Init()
	return s, sess
}

func TestNew_BuildsFieldsInRowOrder(t *testing.T) {
	s, _ := testScreen(t, sentence.Local{})

	assert.Equal(t, "Tabela 1", s.Title())
	require.Len(t, s.fields, catalog.Variants()[0].Blanks())
	assert.Equal(t, qz.Key(0, qz.KindCategory), s.fields[0].key)
	assert.Equal(t, qz.Key(0, qz.KindSentence), s.fields[1].key)
	assert.Equal(t, qz.Key(1, qz.KindConnective), s.fields[2].key)
	assert.True(t, s.fields[0].input.Focused())
}

func TestFocusNavigation(t *testing.T) {
	s, _ := testScreen(t, sentence.Local{})
	last := len(s.fields) - 1

	s.Update(specialKey(tea.KeyTab))
	assert.Equal(t, 1, s.focus)
	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, s.focus)
	s.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, s.focus)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 0, s.focus)
	s.Update(specialKey(tea.KeyUp))
	assert.Equal(t, last, s.focus)

	assert.True(t, s.fields[last].input.Focused())
	assert.False(t, s.fields[0].input.Focused())
}

func TestEnterScoresAndOpensResults(t *testing.T) {
	s, sess := testScreen(t, sentence.Local{})

	typeText(s, "adicao")
	s.Update(specialKey(tea.KeyTab))
	typeText(s, "Ademais, ele chegou tarde.")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, s.scoring)

	_, cmd = s.Update(cmd())
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &results.ResultsScreen{}, push.Screen)

	assert.False(t, s.scoring)
	assert.Equal(t, 2, sess.Total())
	assert.Equal(t, 2, s.HeaderScore().Points)
	assert.Equal(t, 12, s.HeaderScore().Max)
	assert.Equal(t, components.MarkedCorrect, s.fields[0].input.Mark())
	assert.Equal(t, components.MarkedCorrect, s.fields[1].input.Mark())
	assert.Equal(t, components.Unmarked, s.fields[2].input.Mark())
}

func TestEnterMarksWrongAnswers(t *testing.T) {
	s, _ := testScreen(t, sentence.Local{})

	typeText(s, "Conclusão")
	s.Update(specialKey(tea.KeyTab))
	typeText(s, "oi.")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())

	assert.Equal(t, components.MarkedIncorrect, s.fields[0].input.Mark())
	assert.Equal(t, components.MarkedIncorrect, s.fields[1].input.Mark())

	// Focused sentence shows its feedback.
	assert.Contains(t, s.View(120, 40), sentence.LocalInvalid)
}

func TestSecondEnterWhileScoringIsNoop(t *testing.T) {
	gate := newGatedValidator()
	s, sess := testScreen(t, gate)

	s.Update(specialKey(tea.KeyTab))
	typeText(s, "Ademais, ele chegou tarde.")

	_, first := s.Update(specialKey(tea.KeyEnter))
	done := make(chan tea.Msg, 1)
	go func() { done <- first() }()

	select {
	case <-gate.started:
	case <-time.After(2 * time.Second):
		t.Fatal("validator was never called")
	}

	_, second := s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(second())
	assert.Nil(t, cmd)
	assert.True(t, s.scoring)

	close(gate.release)
	msg := <-done
	_, cmd = s.Update(msg)
	require.NotNil(t, cmd)
	assert.False(t, s.scoring)
	assert.Equal(t, 1, sess.Total())
}

func TestRestartDuringPassDiscardsResult(t *testing.T) {
	gate := newGatedValidator()
	s, sess := testScreen(t, gate)

	typeText(s, "Adição")
	s.Update(specialKey(tea.KeyTab))
	typeText(s, "Ademais, ele chegou tarde.")

	_, first := s.Update(specialKey(tea.KeyEnter))
	done := make(chan tea.Msg, 1)
	go func() { done <- first() }()
	<-gate.started

	s.Update(ctrlKey('r'))
	close(gate.release)

	_, cmd := s.Update(<-done)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, sess.Total())
	assert.Equal(t, "", s.fields[0].input.Value())
	assert.Equal(t, components.Unmarked, s.fields[0].input.Mark())
}

func TestCtrlRRestartsSameTable(t *testing.T) {
	s, sess := testScreen(t, sentence.Local{})

	typeText(s, "Adição")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())
	require.Equal(t, 1, sess.Total())
	s.Update(specialKey(tea.KeyTab))

	s.Update(ctrlKey('r'))

	assert.Equal(t, "Tabela 1", s.Title())
	assert.Equal(t, 0, sess.Total())
	assert.Equal(t, 0, s.focus)
	for _, f := range s.fields {
		assert.Equal(t, "", f.input.Value())
		assert.Equal(t, components.Unmarked, f.input.Mark())
	}
}

func TestCtrlNRerollsTable(t *testing.T) {
	s, sess := testScreen(t, sentence.Local{})

	s.Update(ctrlKey('n'))

	assert.NotEqual(t, "Tabela 1", s.Title())
	assert.Equal(t, sess.Variant().Name, s.Title())
	assert.Len(t, s.fields, sess.Variant().Blanks())
	assert.Equal(t, 0, s.focus)
}

func TestRetryFromResultsRerolls(t *testing.T) {
	s, sess := testScreen(t, sentence.Local{})
	before := sess.VariantIndex()

	s.Update(results.RetryMsg{})

	assert.NotEqual(t, before, sess.VariantIndex())
	assert.Equal(t, sess.Variant().Name, s.Title())
}

func TestViewRendersFixedCells(t *testing.T) {
	s, _ := testScreen(t, sentence.Local{})

	view := s.View(120, 40)
	assert.Contains(t, view, "Ademais")
	assert.Contains(t, view, "Explicação")
	assert.Contains(t, view, "Frase de exemplo")
}
