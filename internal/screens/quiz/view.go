package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conectivo/internal/catalog"
	qz "github.com/abhisek/conectivo/internal/quiz"
	"github.com/abhisek/conectivo/internal/ui/layout"
	"github.com/abhisek/conectivo/internal/ui/theme"
)

const cursor = "▸ "

type columns struct {
	connective, category, sentence int
}

func columnWidths(width int) columns {
	c := columns{connective: 24, category: 26}
	if layout.IsCompactWidth(width) {
		c = columns{connective: 20, category: 22}
	}
	c.sentence = max(width-c.connective-c.category-10, 20) // cursors + padding
	return c
}

func (s *QuizScreen) View(width, height int) string {
	cols := columnWidths(width)

	var b strings.Builder
	b.WriteString(s.renderColumnHeaders(cols))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", cols.connective+cols.category+cols.sentence+6)))
	b.WriteString("\n")

	for i, row := range s.variant.Rows {
		b.WriteString(s.renderRow(i, row, cols))
		b.WriteString("\n")
	}

	if tip := s.tooltip(); tip != "" {
		b.WriteString("\n")
		b.WriteString(theme.Tooltip.Width(min(width-4, 80)).Render(tip))
		b.WriteString("\n")
	}

	switch {
	case s.errMsg != "":
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("Erro: " + s.errMsg))
	case s.scoring:
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Verificando respostas…"))
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		MaxHeight(height).
		Render(b.String())
}

func (s *QuizScreen) renderColumnHeaders(cols columns) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.ColumnHeader.Width(cols.connective+2).Render("  Conectivo"),
		theme.ColumnHeader.Width(cols.category+2).Render("  Categoria"),
		theme.ColumnHeader.Width(cols.sentence+2).Render("  Frase de exemplo"),
	)
}

func (s *QuizScreen) renderRow(i int, row catalog.Row, cols columns) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.renderCell(i, qz.KindConnective, row.Connective, cols.connective),
		s.renderCell(i, qz.KindCategory, row.Category, cols.category),
		s.renderField(qz.Key(i, qz.KindSentence), cols.sentence),
	)
}

func (s *QuizScreen) renderCell(i int, kind qz.CellKind, c catalog.Cell, width int) string {
	if f, ok := c.(catalog.Fixed); ok {
		return lipgloss.NewStyle().Width(width + 2).Render(
			"  " + theme.FixedCell.Render(layout.Truncate(f.Value, width)))
	}
	return s.renderField(qz.Key(i, kind), width)
}

func (s *QuizScreen) renderField(key qz.FieldKey, width int) string {
	idx := s.indexOf(key)
	if idx < 0 {
		return lipgloss.NewStyle().Width(width + 2).Render("")
	}
	prefix := "  "
	if idx == s.focus {
		prefix = theme.Selected.Render(cursor)
	}
	body := lipgloss.NewStyle().Width(width).Render(s.fields[idx].input.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, body)
}

func (s *QuizScreen) indexOf(key qz.FieldKey) int {
	for i, f := range s.fields {
		if f.key == key {
			return i
		}
	}
	return -1
}
