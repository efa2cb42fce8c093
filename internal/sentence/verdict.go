// Package sentence validates learner-written example sentences, either
// remotely against the grading service or with a local heuristic.
package sentence

import "context"

// Verdict is the outcome of validating one sentence.
type Verdict struct {
	Valid    bool     `json:"valida"`
	Points   int      `json:"pontos"`
	Feedback []string `json:"feedback"`
}

// Validator checks a sentence against the connective it must use.
// An empty connective means no connective is required.
type Validator interface {
	Validate(ctx context.Context, sentence, connective string) (Verdict, error)
}
