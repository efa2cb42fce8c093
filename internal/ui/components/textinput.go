package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conectivo/internal/ui/theme"
)

// MarkState is the grading mark shown next to an input.
type MarkState int

const (
	Unmarked MarkState = iota
	MarkedCorrect
	MarkedIncorrect
)

// TextInput wraps bubbles/textinput with Conectivo styling and a
// grading mark.
type TextInput struct {
	Model textinput.Model
	mark  MarkState
}

// NewTextInput creates a blurred text input. A positive limit caps its
// length in runes.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input followed by its mark, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	switch t.mark {
	case MarkedCorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case MarkedIncorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears both value and mark.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.mark = Unmarked
}

// SetMark sets the grading mark.
func (t *TextInput) SetMark(m MarkState) {
	t.mark = m
}

// Mark returns the grading mark.
func (t TextInput) Mark() MarkState {
	return t.mark
}
