package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/conectivo/internal/catalog"
	qz "github.com/abhisek/conectivo/internal/quiz"
	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screens/results"
	"github.com/abhisek/conectivo/internal/sentence"
)

type stubProber struct {
	status sentence.Status
}

func (p stubProber) Probe(context.Context) sentence.Status { return p.status }

func testModel(t *testing.T, p Prober) AppModel {
	t.Helper()
	sess, err := qz.NewSession(catalog.Variants(), sentence.Local{}, qz.WithVariant(0))
	require.NoError(t, err)
	m := newAppModel(Options{Session: sess, Prober: p})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func TestNoProberShowsLocalBanner(t *testing.T) {
	m := testModel(t, nil)
	assert.Equal(t, bannerNotConfigured, m.Banner())
}

func TestProbeResultTogglesBanner(t *testing.T) {
	m := testModel(t, stubProber{status: sentence.Status{Available: true, Version: "1.0"}})
	assert.Empty(t, m.Banner())

	updated, _ := m.Update(probeDoneMsg{Status: sentence.Status{Err: errors.New("connection refused")}})
	m = updated.(AppModel)
	assert.Equal(t, bannerUnavailable, m.Banner())
	assert.Contains(t, m.render(), "validação local")

	updated, _ = m.Update(probeDoneMsg{Status: sentence.Status{Available: true}})
	m = updated.(AppModel)
	assert.Empty(t, m.Banner())
}

func TestInitRunsProbe(t *testing.T) {
	m := testModel(t, stubProber{status: sentence.Status{Available: true}})
	assert.NotNil(t, m.Init())
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t, nil)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEscPopsModalOnly(t *testing.T) {
	m := testModel(t, nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m.Update(router.PushScreenMsg{Screen: results.New(qz.Result{Variant: "Tabela 1", Blanks: 12})})
	require.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.render(), "Resultado")

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestViewShowsTableAndScore(t *testing.T) {
	m := testModel(t, stubProber{status: sentence.Status{Available: true}})
	content := m.render()
	assert.Contains(t, content, "Conectivo")
	assert.Contains(t, content, "Tabela 1")
	assert.Contains(t, content, "0/12 pontos")
}

func TestSplashHandsOverToQuiz(t *testing.T) {
	sess, err := qz.NewSession(catalog.Variants(), sentence.Local{}, qz.WithVariant(1))
	require.NoError(t, err)
	m := newAppModel(Options{Session: sess, Splash: true})
	assert.Equal(t, "", m.router.Active().Title())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "Tabela 2", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}
