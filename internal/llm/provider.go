// Package llm is the language-model abstraction used by the sentence
// grader. Providers return JSON that has already been checked against the
// request's schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a structured completion.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output conforming to it. Responses
	// that do not conform fail with *ErrInvalidResponse.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // Zero leaves the provider default
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single user turn.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	Name        string // Kebab-case identifier, also the validation cache key
	Description string
	Definition  map[string]any
}

// Response is a completed generation.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // "end" or "max_tokens"
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel expands a short alias; unknown names are used verbatim.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
