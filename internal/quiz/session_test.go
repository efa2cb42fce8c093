package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/conectivo/internal/catalog"
	"github.com/abhisek/conectivo/internal/sentence"
)

// blockingValidator parks each call until released.
type blockingValidator struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingValidator() *blockingValidator {
	return &blockingValidator{started: make(chan struct{}, 16), release: make(chan struct{})}
}

func (b *blockingValidator) Validate(ctx context.Context, s, c string) (sentence.Verdict, error) {
	b.started <- struct{}{}
	<-b.release
	return sentence.ValidateLocal(s, c), nil
}

type failingValidator struct{}

func (failingValidator) Validate(context.Context, string, string) (sentence.Verdict, error) {
	return sentence.Verdict{}, errors.New("boom")
}

func singleRowVariant() catalog.Variant {
	return catalog.Variant{
		Name: "single",
		Rows: []catalog.Row{{
			Connective: catalog.Blank{Accepted: []string{"Ademais", "Outrossim", "E assim"}, Points: 1},
			Category:   catalog.Fixed{Value: string(catalog.CategoryAddition)},
			Sentence:   catalog.SentenceCell{Points: 1},
		}},
	}
}

func newTestSession(t *testing.T, variants []catalog.Variant, v sentence.Validator, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(variants, v, opts...)
	require.NoError(t, err)
	return s
}

// fullInputs answers every field of the first built-in table correctly.
func fullInputs() Inputs {
	return Inputs{
		Key(0, KindCategory):   "adicao",
		Key(0, KindSentence):   "Ademais, ele chegou tarde.",
		Key(1, KindConnective): "por isso",
		Key(1, KindSentence):   "Por isso, ficamos em casa.",
		Key(2, KindSentence):   "Logo, o jogo foi adiado.",
		Key(3, KindConnective): "Outrossim",
		Key(3, KindSentence):   "Outrossim, houve atrasos no voo.",
		Key(4, KindCategory):   "Conclusão",
		Key(4, KindSentence):   "Portanto, precisamos estudar mais.",
		Key(5, KindSentence):   "Entretanto, ninguém reclamou disso.",
		Key(6, KindCategory):   "Explicação",
		Key(6, KindSentence):   "conforme combinado",
	}
}

func TestNewSession_RequiresVariants(t *testing.T) {
	_, err := NewSession(nil, sentence.Local{})
	assert.ErrorIs(t, err, ErrNoVariants)
}

func TestNewSession_HasID(t *testing.T) {
	a := newTestSession(t, catalog.Variants(), nil)
	b := newTestSession(t, catalog.Variants(), nil)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestScore_BlankConnectiveMatchesAccentAndCase(t *testing.T) {
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, sentence.Local{})

	res, err := s.Score(context.Background(), Inputs{Key(0, KindConnective): "ademais"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Points)
	assert.Equal(t, 2, res.Blanks)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, MarkCorrect, res.Marks[Key(0, KindConnective)])
	assert.Equal(t, MarkCorrect, s.Field(Key(0, KindConnective)).Mark)
	assert.Equal(t, MarkNone, s.Field(Key(0, KindSentence)).Mark)
}

func TestScore_FullTable(t *testing.T) {
	s := newTestSession(t, catalog.Variants(), sentence.Local{})

	res, err := s.Score(context.Background(), fullInputs())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Blanks)
	assert.Equal(t, 10, res.Points)
	assert.Equal(t, 10, res.Correct)
	assert.Equal(t, 10, s.Total())

	assert.Equal(t, MarkIncorrect, s.Field(Key(6, KindCategory)).Mark)
	st := s.Field(Key(6, KindSentence))
	assert.Equal(t, MarkIncorrect, st.Mark)
	assert.Contains(t, st.Tooltip, sentence.LocalInvalid)
	assert.Equal(t, sentence.LocalValid, s.Field(Key(0, KindSentence)).Tooltip)
}

func TestScore_SentenceUsesTypedConnective(t *testing.T) {
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, sentence.Local{})

	res, err := s.Score(context.Background(), Inputs{
		Key(0, KindConnective): "Outrossim",
		Key(0, KindSentence):   "Ademais, ele chegou tarde.",
	})
	require.NoError(t, err)
	assert.Equal(t, MarkCorrect, res.Marks[Key(0, KindConnective)])
	assert.Equal(t, MarkIncorrect, res.Marks[Key(0, KindSentence)])
	assert.Equal(t, 1, res.Points)
}

func TestScore_Idempotent(t *testing.T) {
	s := newTestSession(t, catalog.Variants(), sentence.Local{})
	in := fullInputs()

	first, err := s.Score(context.Background(), in)
	require.NoError(t, err)
	second, err := s.Score(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.Points, s.Total())
}

func TestScore_EmptyInputClearsMarks(t *testing.T) {
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, sentence.Local{})

	_, err := s.Score(context.Background(), Inputs{
		Key(0, KindConnective): "talvez",
		Key(0, KindSentence):   "oi.",
	})
	require.NoError(t, err)
	assert.Equal(t, MarkIncorrect, s.Field(Key(0, KindConnective)).Mark)
	assert.NotEmpty(t, s.Field(Key(0, KindSentence)).Tooltip)

	res, err := s.Score(context.Background(), Inputs{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Points)
	assert.Equal(t, FieldState{}, s.Field(Key(0, KindConnective)))
	assert.Equal(t, FieldState{}, s.Field(Key(0, KindSentence)))
}

func TestScore_ValidatorErrorClearsMark(t *testing.T) {
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, failingValidator{})

	res, err := s.Score(context.Background(), Inputs{Key(0, KindSentence): "Ademais, ele chegou tarde."})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Points)
	st := s.Field(Key(0, KindSentence))
	assert.Equal(t, MarkNone, st.Mark)
	assert.Equal(t, ValidationErrorTooltip, st.Tooltip)
}

func TestScore_RejectsConcurrentPass(t *testing.T) {
	bv := newBlockingValidator()
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, bv)
	in := Inputs{
		Key(0, KindConnective): "ademais",
		Key(0, KindSentence):   "Ademais, ele chegou tarde.",
	}

	done := make(chan *Result)
	go func() {
		res, _ := s.Score(context.Background(), in)
		done <- res
	}()
	<-bv.started

	assert.True(t, s.Scoring())
	res, err := s.Score(context.Background(), in)
	assert.ErrorIs(t, err, ErrScoreInProgress)
	assert.Nil(t, res)

	close(bv.release)
	first := <-done
	require.NotNil(t, first)
	assert.Equal(t, 2, first.Points)
	assert.Equal(t, 2, s.Total())
	assert.False(t, s.Scoring())
}

func TestScore_HungRemoteHoldsGuardUntilTimeout(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	// Unblock the handler before Close waits on it.
	defer close(release)

	chain := sentence.NewChain(sentence.NewRemote(srv.URL, 200*time.Millisecond), nil)
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, chain)
	in := Inputs{
		Key(0, KindConnective): "ademais",
		Key(0, KindSentence):   "Ademais, ele chegou tarde.",
	}

	done := make(chan *Result)
	go func() {
		res, _ := s.Score(context.Background(), in)
		done <- res
	}()
	<-entered

	_, err := s.Score(context.Background(), in)
	assert.ErrorIs(t, err, ErrScoreInProgress)

	select {
	case res := <-done:
		require.NotNil(t, res)
		assert.Equal(t, 2, res.Points, "local fallback should accept the sentence")
		assert.Equal(t, sentence.LocalValid, s.Field(Key(0, KindSentence)).Tooltip)
	case <-time.After(5 * time.Second):
		t.Fatal("scoring pass did not finish after transport timeout")
	}
}

func TestScore_RestartDuringPassDiscardsResult(t *testing.T) {
	bv := newBlockingValidator()
	s := newTestSession(t, []catalog.Variant{singleRowVariant()}, bv)

	done := make(chan struct{})
	go func() {
		s.Score(context.Background(), Inputs{
			Key(0, KindConnective): "ademais",
			Key(0, KindSentence):   "Ademais, ele chegou tarde.",
		})
		close(done)
	}()
	<-bv.started
	s.Restart()
	close(bv.release)
	<-done

	assert.Equal(t, 0, s.Total())
	assert.Nil(t, s.LastResult())
	assert.Equal(t, FieldState{}, s.Field(Key(0, KindSentence)))
}

func TestReroll_NeverRepeats(t *testing.T) {
	s := newTestSession(t, catalog.Variants(), nil, WithRand(rand.New(rand.NewPCG(1, 2))))

	prev := s.VariantIndex()
	for range 100 {
		s.Reroll()
		cur := s.VariantIndex()
		if cur == prev {
			t.Fatalf("re-roll repeated variant %d", cur)
		}
		prev = cur
	}
}

func TestReroll_SingleVariant(t *testing.T) {
	v := singleRowVariant()
	s := newTestSession(t, []catalog.Variant{v}, nil)
	got := s.Reroll()
	assert.Equal(t, v.Name, got.Name)
	assert.Equal(t, 0, s.VariantIndex())
}

func TestReroll_ResetsState(t *testing.T) {
	s := newTestSession(t, catalog.Variants(), sentence.Local{})
	_, err := s.Score(context.Background(), fullInputs())
	require.NoError(t, err)
	require.NotZero(t, s.Total())

	s.Reroll()
	assert.Zero(t, s.Total())
	assert.Nil(t, s.LastResult())
	assert.Equal(t, FieldState{}, s.Field(Key(0, KindSentence)))
}

func TestRestart_KeepsVariant(t *testing.T) {
	s := newTestSession(t, catalog.Variants(), sentence.Local{}, WithVariant(2))
	_, err := s.Score(context.Background(), Inputs{Key(1, KindConnective): "ademais"})
	require.NoError(t, err)
	require.Equal(t, 1, s.Total())

	s.Restart()
	assert.Equal(t, 2, s.VariantIndex())
	assert.Zero(t, s.Total())
}

func TestInputs_Value(t *testing.T) {
	in := Inputs{Key(0, KindConnective): "  Ademais "}
	assert.Equal(t, "Ademais", in.Value(0, KindConnective))
	assert.Equal(t, "", in.Value(3, KindSentence))
}
