package sentence

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minLocalLength = 10
	minLocalWords  = 3
)

// Feedback copy for the local heuristic.
const (
	LocalValid   = "✓ Frase válida (validação local)"
	LocalInvalid = "✗ Frase inválida (validação local)"
)

// Local is the offline heuristic validator. It checks shape only, not grammar.
type Local struct{}

var _ Validator = Local{}

// Validate implements Validator. It never fails.
func (Local) Validate(_ context.Context, sentence, connective string) (Verdict, error) {
	return ValidateLocal(sentence, connective), nil
}

// ValidateLocal applies the heuristic: length, word count, capitalization,
// terminal punctuation and, if given, presence of the connective.
func ValidateLocal(sentence, connective string) Verdict {
	s := strings.TrimSpace(sentence)
	var problems []string

	if utf8.RuneCountInString(s) < minLocalLength {
		problems = append(problems, "Frase muito curta")
	}
	if len(strings.Fields(s)) < minLocalWords {
		problems = append(problems, "Frase deve ter pelo menos três palavras")
	}
	if !startsUpper(s) {
		problems = append(problems, "Frase deve começar com letra maiúscula")
	}
	if !endsWithPunctuation(s) {
		problems = append(problems, "Frase deve terminar com pontuação")
	}
	if c := strings.TrimSpace(connective); c != "" && !containsFold(s, c) {
		problems = append(problems, fmt.Sprintf("O conectivo '%s' deve estar presente na frase", c))
	}

	if len(problems) == 0 {
		return Verdict{Valid: true, Points: 1, Feedback: []string{LocalValid}}
	}

	feedback := make([]string, 0, len(problems)+1)
	feedback = append(feedback, LocalInvalid)
	for _, p := range problems {
		feedback = append(feedback, "✗ "+p)
	}
	return Verdict{Valid: false, Points: 0, Feedback: feedback}
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

func endsWithPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// containsFold is a case-insensitive substring test. Accents are significant.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
