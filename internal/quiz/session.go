package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/abhisek/conectivo/internal/answer"
	"github.com/abhisek/conectivo/internal/catalog"
	"github.com/abhisek/conectivo/internal/logging"
	"github.com/abhisek/conectivo/internal/sentence"
)

// ValidationErrorTooltip is shown on a sentence whose validator failed.
const ValidationErrorTooltip = "Erro na validação da frase"

var (
	// ErrScoreInProgress is returned when Score is called while a pass is running.
	ErrScoreInProgress = errors.New("scoring pass already in progress")

	// ErrNoVariants is returned by NewSession when given no tables.
	ErrNoVariants = errors.New("no table variants")
)

// Result is the outcome of one scoring pass.
type Result struct {
	Variant  string
	Points   int
	Blanks   int // Gradable fields evaluated
	Correct  int
	Marks    map[FieldKey]Mark
	Tooltips map[FieldKey]string
}

// Session owns the state of one learner's quiz: active table, score and
// per-field marks.
type Session struct {
	id        string
	variants  []catalog.Variant
	validator sentence.Validator
	log       *logging.Logger
	rng       *rand.Rand

	scoring atomic.Bool

	mu         sync.Mutex
	active     int
	generation uint64 // Bumped on every reset; stale passes stop writing
	score      int
	fields     map[FieldKey]FieldState
	last       *Result
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for re-rolls.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithVariant selects the initial table by index.
func WithVariant(i int) Option {
	return func(s *Session) { s.active = i }
}

// NewSession creates a session over the given tables, starting on the first.
func NewSession(variants []catalog.Variant, validator sentence.Validator, opts ...Option) (*Session, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	if validator == nil {
		validator = sentence.Local{}
	}
	s := &Session{
		id:        uuid.New().String(),
		variants:  variants,
		validator: validator,
		log:       logging.Nop(),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		fields:    make(map[FieldKey]FieldState),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.active < 0 || s.active >= len(variants) {
		s.active = 0
	}
	s.log = s.log.With("session_id", s.id)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Variant returns the active table.
func (s *Session) Variant() catalog.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variants[s.active]
}

// VariantIndex returns the index of the active table.
func (s *Session) VariantIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Total returns the score recorded by the most recent completed pass.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Field returns the current mark and tooltip for a field.
func (s *Session) Field(key FieldKey) FieldState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields[key]
}

// LastResult returns the most recent completed pass, or nil.
func (s *Session) LastResult() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Scoring reports whether a pass is running.
func (s *Session) Scoring() bool { return s.scoring.Load() }

// Score grades every row of the active table in order. Sentence cells are
// validated one at a time. If a pass is already running it returns
// ErrScoreInProgress and changes nothing.
func (s *Session) Score(ctx context.Context, inputs Inputs) (*Result, error) {
	if !s.scoring.CompareAndSwap(false, true) {
		return nil, ErrScoreInProgress
	}
	defer s.scoring.Store(false)

	s.mu.Lock()
	v := s.variants[s.active]
	gen := s.generation
	s.mu.Unlock()

	res := &Result{
		Variant:  v.Name,
		Marks:    make(map[FieldKey]Mark),
		Tooltips: make(map[FieldKey]string),
	}
	record := func(key FieldKey, st FieldState) {
		res.Marks[key] = st.Mark
		if st.Tooltip != "" {
			res.Tooltips[key] = st.Tooltip
		}
		s.setField(gen, key, st)
	}

	for i, row := range v.Rows {
		for _, cell := range []struct {
			kind CellKind
			cell catalog.Cell
		}{
			{KindConnective, row.Connective},
			{KindCategory, row.Category},
		} {
			b, ok := cell.cell.(catalog.Blank)
			if !ok {
				continue
			}
			res.Blanks++
			key := Key(i, cell.kind)
			input := inputs.Value(i, cell.kind)
			switch {
			case input == "":
				record(key, FieldState{})
			case answer.Matches(input, b.Accepted):
				res.Points += b.Points
				res.Correct++
				record(key, FieldState{Mark: MarkCorrect})
			default:
				record(key, FieldState{Mark: MarkIncorrect})
			}
		}

		res.Blanks++
		key := Key(i, KindSentence)
		text := inputs.Value(i, KindSentence)
		if text == "" {
			record(key, FieldState{})
			continue
		}

		// Captured before the validator call so later edits cannot race it.
		connective := row.Sentence.RequiredConnective
		if connective == "" {
			connective = inputs.Value(i, KindConnective)
		}

		verdict, err := s.validator.Validate(ctx, text, connective)
		if err != nil {
			s.log.Warn("sentence validation failed", "row", i+1, "error", err)
			record(key, FieldState{Tooltip: ValidationErrorTooltip})
			continue
		}

		st := FieldState{Mark: MarkIncorrect, Tooltip: strings.Join(verdict.Feedback, "\n")}
		if verdict.Valid {
			st.Mark = MarkCorrect
			res.Points += row.Sentence.Points
			res.Correct++
		}
		record(key, st)
	}

	s.mu.Lock()
	if s.generation == gen {
		s.score = res.Points
		s.last = res
	}
	s.mu.Unlock()

	s.log.Debug("scoring pass complete",
		"variant", v.Name,
		"correct", res.Correct,
		"blanks", res.Blanks,
		"points", res.Points,
	)
	return res, nil
}

func (s *Session) setField(gen uint64, key FieldKey, st FieldState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return
	}
	if st == (FieldState{}) {
		delete(s.fields, key)
		return
	}
	s.fields[key] = st
}

// Reroll switches to a randomly chosen table different from the active
// one (when more than one exists) and resets score and marks.
func (s *Session) Reroll() catalog.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.active
	if len(s.variants) > 1 {
		for next == s.active {
			next = s.rng.IntN(len(s.variants))
		}
	}
	s.active = next
	s.resetLocked()
	s.log.Debug("table re-rolled", "variant", s.variants[next].Name)
	return s.variants[next]
}

// Restart resets score and marks, keeping the active table.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.generation++
	s.score = 0
	s.last = nil
	s.fields = make(map[FieldKey]FieldState)
}
