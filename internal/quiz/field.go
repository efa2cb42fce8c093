package quiz

import (
	"fmt"
	"strings"
)

// CellKind identifies a column of a row.
type CellKind int

const (
	KindConnective CellKind = iota
	KindCategory
	KindSentence
)

func (k CellKind) String() string {
	switch k {
	case KindConnective:
		return "connective"
	case KindCategory:
		return "category"
	case KindSentence:
		return "sentence"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// FieldKey addresses one input field of the active table.
type FieldKey struct {
	Row  int
	Kind CellKind
}

// Key is shorthand for FieldKey{Row: row, Kind: kind}.
func Key(row int, kind CellKind) FieldKey {
	return FieldKey{Row: row, Kind: kind}
}

// Inputs holds the learner's raw field values. A missing key is empty input.
type Inputs map[FieldKey]string

// Value returns the trimmed value for a field.
func (in Inputs) Value(row int, kind CellKind) string {
	return strings.TrimSpace(in[Key(row, kind)])
}

// Mark is the visual grading state of a field.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// FieldState is the mark and tooltip shown for a field.
type FieldState struct {
	Mark    Mark
	Tooltip string
}
