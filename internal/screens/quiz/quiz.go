// Package quiz implements the table screen where the learner fills in
// connectives, categories and example sentences.
package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conectivo/internal/catalog"
	"github.com/abhisek/conectivo/internal/logging"
	qz "github.com/abhisek/conectivo/internal/quiz"
	"github.com/abhisek/conectivo/internal/router"
	"github.com/abhisek/conectivo/internal/screen"
	"github.com/abhisek/conectivo/internal/screens/results"
	"github.com/abhisek/conectivo/internal/ui/components"
	"github.com/abhisek/conectivo/internal/ui/layout"
)

const (
	shortLimit    = 40
	sentenceLimit = 280
)

// field is one blank cell of the active table.
type field struct {
	key   qz.FieldKey
	input components.TextInput
}

// QuizScreen implements screen.Screen for the active table.
type QuizScreen struct {
	session *qz.Session
	log     *logging.Logger
	variant catalog.Variant
	fields  []field
	focus   int
	scoring bool
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ScoreProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the session's active table.
func New(session *qz.Session, log *logging.Logger) *QuizScreen {
	if log == nil {
		log = logging.Nop()
	}
	s := &QuizScreen{session: session, log: log}
	s.load()
	return s
}

// load rebuilds the input fields for the session's active table.
func (s *QuizScreen) load() {
	s.variant = s.session.Variant()
	s.fields = s.fields[:0]
	for i, row := range s.variant.Rows {
		if _, ok := row.Connective.(catalog.Blank); ok {
			s.fields = append(s.fields, field{
				key:   qz.Key(i, qz.KindConnective),
				input: components.NewTextInput("Conectivo", shortLimit),
			})
		}
		if _, ok := row.Category.(catalog.Blank); ok {
			s.fields = append(s.fields, field{
				key:   qz.Key(i, qz.KindCategory),
				input: components.NewTextInput("Categoria", shortLimit),
			})
		}
		s.fields = append(s.fields, field{
			key:   qz.Key(i, qz.KindSentence),
			input: components.NewTextInput("Escreva uma frase…", sentenceLimit),
		})
	}
	s.focus = 0
	s.errMsg = ""
	s.fields[0].input.Focus()
}

func (s *QuizScreen) Init() tea.Cmd {
	if len(s.fields) == 0 {
		return nil
	}
	return s.fields[s.focus].input.Focus()
}

func (s *QuizScreen) Title() string {
	return s.variant.Name
}

func (s *QuizScreen) HeaderScore() layout.Score {
	return layout.Score{Points: s.session.Total(), Max: s.variant.MaxPoints()}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.scoring {
		return []layout.KeyHint{
			{Key: "", Description: "Verificando respostas…"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Verificar"},
		{Key: "Ctrl+R", Description: "Reiniciar"},
		{Key: "Ctrl+N", Description: "Nova tabela"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoreDoneMsg:
		return s.handleScoreDone(msg)

	case results.RetryMsg:
		return s, s.reroll()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if len(s.fields) > 0 {
		var cmd tea.Cmd
		s.fields[s.focus].input, cmd = s.fields[s.focus].input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "enter":
		return s, s.score()
	case "ctrl+r":
		return s, s.restart()
	case "ctrl+n":
		return s, s.reroll()
	}

	var cmd tea.Cmd
	s.fields[s.focus].input, cmd = s.fields[s.focus].input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) moveFocus(delta int) tea.Cmd {
	n := len(s.fields)
	s.fields[s.focus].input.Blur()
	s.focus = ((s.focus+delta)%n + n) % n
	return s.fields[s.focus].input.Focus()
}

// inputs snapshots the current field values so the pass never reads
// inputs that change while it runs.
func (s *QuizScreen) inputs() qz.Inputs {
	in := make(qz.Inputs, len(s.fields))
	for _, f := range s.fields {
		in[f.key] = f.input.Value()
	}
	return in
}

// score starts a scoring pass in the background. A pass already in flight
// makes the session reject the new one.
func (s *QuizScreen) score() tea.Cmd {
	in := s.inputs()
	sess := s.session
	s.scoring = true
	s.errMsg = ""
	return func() tea.Msg {
		res, err := sess.Score(context.Background(), in)
		return scoreDoneMsg{Result: res, Err: err}
	}
}

func (s *QuizScreen) handleScoreDone(msg scoreDoneMsg) (screen.Screen, tea.Cmd) {
	if errors.Is(msg.Err, qz.ErrScoreInProgress) {
		s.log.Debug("scoring pass ignored, one is already running")
		return s, nil
	}
	s.scoring = s.session.Scoring()
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	// A restart or re-roll while the pass ran makes its result stale.
	if s.session.LastResult() != msg.Result {
		return s, nil
	}

	s.syncMarks()
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(*msg.Result)}
	}
}

// syncMarks copies the session's per-field marks onto the inputs.
func (s *QuizScreen) syncMarks() {
	for i := range s.fields {
		var m components.MarkState
		switch s.session.Field(s.fields[i].key).Mark {
		case qz.MarkCorrect:
			m = components.MarkedCorrect
		case qz.MarkIncorrect:
			m = components.MarkedIncorrect
		}
		s.fields[i].input.SetMark(m)
	}
}

func (s *QuizScreen) restart() tea.Cmd {
	s.session.Restart()
	for i := range s.fields {
		s.fields[i].input.Reset()
	}
	s.errMsg = ""
	s.log.Debug("table restarted", "variant", s.variant.Name)
	return s.moveFocus(-s.focus)
}

func (s *QuizScreen) reroll() tea.Cmd {
	s.session.Reroll()
	s.load()
	return s.fields[s.focus].input.Focus()
}

// tooltip returns the feedback for the focused field, if any.
func (s *QuizScreen) tooltip() string {
	if len(s.fields) == 0 {
		return ""
	}
	return s.session.Field(s.fields[s.focus].key).Tooltip
}
