package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conectivo/internal/grader"
	"github.com/abhisek/conectivo/internal/sentence"
)

var checkCmd = &cobra.Command{
	Use:   "check <sentence>",
	Short: "Validate one example sentence",
	Long: `Validate one example sentence through the remote validator, falling back
to the local heuristic when it is unavailable.

With --local only the local heuristic runs. With --grade the sentence is
graded in-process by the same weighted checks the server uses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg, true)
		if err != nil {
			return err
		}
		defer log.Sync()

		text := strings.Join(args, " ")
		connective, _ := cmd.Flags().GetString("connective")
		local, _ := cmd.Flags().GetBool("local")
		grade, _ := cmd.Flags().GetBool("grade")
		ctx := context.Background()
		out := cmd.OutOrStdout()

		switch {
		case grade:
			g, err := newGrader(ctx, log)
			if err != nil {
				return err
			}
			printAssessment(out, g.Grade(ctx, text, connective))
			return nil
		case local:
			printVerdict(out, sentence.ValidateLocal(text, connective))
			return nil
		}

		chain, _ := newValidator(cfg, log)
		v, err := chain.Validate(ctx, text, connective)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		printVerdict(out, v)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("connective", "c", "", "Connective the sentence must contain")
	checkCmd.Flags().Bool("local", false, "Use only the local heuristic")
	checkCmd.Flags().Bool("grade", false, "Grade in-process with the server's weighted checks")
	checkCmd.MarkFlagsMutuallyExclusive("local", "grade")
}

func printVerdict(w io.Writer, v sentence.Verdict) {
	status := "inválida"
	if v.Valid {
		status = "válida"
	}
	fmt.Fprintf(w, "Frase %s (%d ponto(s))\n", status, v.Points)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, line := range v.Feedback {
		fmt.Fprintln(w, line)
	}
}

func printAssessment(w io.Writer, a grader.Assessment) {
	fmt.Fprintf(w, "%-12s  %-6s  %-6s  %s\n", "Check", "Weight", "Passed", "Message")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, c := range a.Checks {
		passed := "✓"
		msg := c.OK
		if !c.Passed {
			passed = "✗"
			msg = c.Message
		}
		fmt.Fprintf(w, "%-12s  %-6.1f  %-6s  %s\n", c.Name, c.Weight, passed, msg)
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Score: %.2f (pass mark %.2f)\n\n", a.Score, grader.PassMark)
	printVerdict(w, a.Verdict())
}
