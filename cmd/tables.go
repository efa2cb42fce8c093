package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conectivo/internal/catalog"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the exercise tables and their answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.Validate(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, v := range catalog.Variants() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printVariant(out, v)
		}
		return nil
	},
}

func printVariant(w io.Writer, v catalog.Variant) {
	fmt.Fprintf(w, "%s  (%d campos, máximo %d pontos)\n", v.Name, v.Blanks(), v.MaxPoints())
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for i, row := range v.Rows {
		sentence := "[FRASE COM VALIDAÇÃO]"
		if c := row.Sentence.RequiredConnective; c != "" {
			sentence = fmt.Sprintf("[FRASE COM VALIDAÇÃO: %s]", c)
		}
		fmt.Fprintf(w, "Linha %d: %s | %s | %s\n", i+1, describeCell(row.Connective), describeCell(row.Category), sentence)
	}
}

func describeCell(c catalog.Cell) string {
	switch c := c.(type) {
	case catalog.Fixed:
		return c.Value
	case catalog.Blank:
		return fmt.Sprintf("[PREENCHER: %s]", strings.Join(c.Accepted, ", "))
	default:
		return "?"
	}
}
