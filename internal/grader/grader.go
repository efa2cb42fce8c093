// Package grader is the authoritative sentence grader behind the
// validation server. It combines structural checks with a single
// language-model analysis for grammar and syntax.
package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/conectivo/internal/llm"
	"github.com/abhisek/conectivo/internal/logging"
	"github.com/abhisek/conectivo/internal/sentence"
)

// Check weights; a sentence is valid at PassMark or above.
const (
	WeightStructure  = 0.3
	WeightConnective = 0.2
	WeightGrammar    = 0.3
	WeightSemantics  = 0.2

	PassMark = 0.7
)

// Check is the outcome of one weighted criterion.
type Check struct {
	Name    string
	Weight  float64
	Passed  bool
	Message string // Failure reason; empty when passed
	OK      string // Feedback line shown when passed
}

// Assessment is the full grading breakdown for one sentence.
type Assessment struct {
	Score  float64
	Checks []Check
}

// Valid reports whether the score reaches PassMark.
func (a Assessment) Valid() bool { return a.Score >= PassMark-1e-9 }

// Verdict converts the assessment to the wire verdict.
func (a Assessment) Verdict() sentence.Verdict {
	v := sentence.Verdict{Valid: a.Valid()}
	if v.Valid {
		v.Points = 1
	}
	for _, c := range a.Checks {
		if c.Passed {
			v.Feedback = append(v.Feedback, "✓ "+c.OK)
		} else {
			v.Feedback = append(v.Feedback, "✗ "+c.Message)
		}
	}
	return v
}

// Grader scores sentences. The zero value has no model and passes the
// grammar and semantic checks.
type Grader struct {
	provider llm.Provider
	timeout  time.Duration
	log      *logging.Logger
}

var _ sentence.Validator = (*Grader)(nil)

// Option configures a Grader.
type Option func(*Grader)

// WithProvider enables model-backed grammar and semantic checks.
func WithProvider(p llm.Provider) Option {
	return func(g *Grader) { g.provider = p }
}

// WithTimeout bounds each model call.
func WithTimeout(d time.Duration) Option {
	return func(g *Grader) { g.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(g *Grader) { g.log = l }
}

func New(opts ...Option) *Grader {
	g := &Grader{log: logging.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ModelAvailable reports whether a language model is configured.
func (g *Grader) ModelAvailable() bool { return g.provider != nil }

// Validate implements sentence.Validator.
func (g *Grader) Validate(ctx context.Context, s, connective string) (sentence.Verdict, error) {
	return g.Grade(ctx, s, connective).Verdict(), nil
}

// Grade runs every check against the trimmed sentence.
func (g *Grader) Grade(ctx context.Context, s, connective string) Assessment {
	s = strings.TrimSpace(s)
	connective = strings.TrimSpace(connective)

	structOK, structMsg := checkStructure(s)
	connOK, connMsg := checkConnective(s, connective)
	a := g.analyze(ctx, s)
	grammarOK, grammarMsg := checkGrammar(a)
	semOK, semMsg := checkSemantics(a)

	checks := []Check{
		{Name: "structure", Weight: WeightStructure, Passed: structOK, Message: structMsg, OK: "Estrutura básica correta"},
		{Name: "connective", Weight: WeightConnective, Passed: connOK, Message: connMsg, OK: "Conectivo usado corretamente"},
		{Name: "grammar", Weight: WeightGrammar, Passed: grammarOK, Message: grammarMsg, OK: "Gramática correta"},
		{Name: "semantics", Weight: WeightSemantics, Passed: semOK, Message: semMsg, OK: "Estrutura semântica válida"},
	}

	var score float64
	for _, c := range checks {
		if c.Passed {
			score += c.Weight
		}
	}
	return Assessment{Score: min(1, max(0, score)), Checks: checks}
}

// analyze asks the model for grammar and syntax facts. A nil result means
// the analysis is unavailable and both dependent checks pass.
func (g *Grader) analyze(ctx context.Context, s string) *analysis {
	if g.provider == nil || s == "" {
		return nil
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "sentence-grading"), buildRequest(s))
	if err != nil {
		g.log.Warn("grammar analysis unavailable", "error", err)
		return nil
	}
	var a analysis
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		g.log.Warn("grammar analysis undecodable", "error", err)
		return nil
	}
	return &a
}

func checkStructure(s string) (bool, string) {
	switch {
	case utf8.RuneCountInString(s) < 3:
		return false, "Frase muito curta"
	case len(strings.Fields(s)) < 2:
		return false, "Frase deve ter pelo menos duas palavras"
	}
	if r, _ := utf8.DecodeRuneInString(s); !unicode.IsUpper(r) {
		return false, "Frase deve começar com letra maiúscula"
	}
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		return false, "Frase deve terminar com pontuação"
	}
	return true, ""
}

func checkConnective(s, connective string) (bool, string) {
	if connective == "" {
		return true, ""
	}
	if !strings.Contains(strings.ToLower(s), strings.ToLower(connective)) {
		return false, fmt.Sprintf("O conectivo '%s' deve estar presente na frase", connective)
	}
	return true, ""
}

func checkGrammar(a *analysis) (bool, string) {
	if a == nil || a.GrammarOK {
		return true, ""
	}
	if a.GrammarError == "" {
		return false, "Erro gramatical"
	}
	return false, "Erro gramatical: " + a.GrammarError
}

func checkSemantics(a *analysis) (bool, string) {
	switch {
	case a == nil:
		return true, ""
	case !a.HasVerb:
		return false, "Frase deve conter pelo menos um verbo"
	case !a.HasNoun:
		return false, "Frase deve conter pelo menos um substantivo"
	case !a.HasSubject:
		return false, "Frase deve ter uma estrutura sintática clara com sujeito"
	}
	return true, ""
}
