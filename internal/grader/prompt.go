package grader

import (
	"fmt"

	"github.com/abhisek/conectivo/internal/llm"
)

const systemPrompt = `Você é um revisor de língua portuguesa (português do Brasil).
Analise UMA frase escrita por um estudante e responda somente com o JSON pedido.

- grammar_ok: false apenas para erros de gramática, ortografia ou pontuação; ignore estilo.
- grammar_error: descrição curta do primeiro erro encontrado, ou "" se não houver.
- has_verb: a frase contém pelo menos um verbo.
- has_noun: a frase contém pelo menos um substantivo ou nome próprio.
- has_subject: a frase tem um sujeito identificável (explícito ou oculto com verbo conjugado).`

// gradeSchema is the structured answer requested from the model.
var gradeSchema = &llm.Schema{
	Name:        "sentence-grade",
	Description: "Grammar and syntactic-structure checks for one Portuguese sentence",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grammar_ok":    map[string]any{"type": "boolean"},
			"grammar_error": map[string]any{"type": "string"},
			"has_verb":      map[string]any{"type": "boolean"},
			"has_noun":      map[string]any{"type": "boolean"},
			"has_subject":   map[string]any{"type": "boolean"},
		},
		"required":             []any{"grammar_ok", "grammar_error", "has_verb", "has_noun", "has_subject"},
		"additionalProperties": false,
	},
}

// analysis is the decoded model answer.
type analysis struct {
	GrammarOK    bool   `json:"grammar_ok"`
	GrammarError string `json:"grammar_error"`
	HasVerb      bool   `json:"has_verb"`
	HasNoun      bool   `json:"has_noun"`
	HasSubject   bool   `json:"has_subject"`
}

func buildRequest(sentence string) llm.Request {
	return llm.Request{
		System:    systemPrompt,
		Messages:  llm.UserMessage(fmt.Sprintf("Frase: %q", sentence)),
		Schema:    gradeSchema,
		MaxTokens: 256,
	}
}
