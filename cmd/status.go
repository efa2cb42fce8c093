package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the remote validator is reachable",
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

		_, remote := newValidator(cfg, log)
		if remote == nil {
			return errors.New("no remote validator configured")
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		st := remote.Probe(ctx)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Validator:  %s\n", remote.BaseURL())
		if !st.Available {
			fmt.Fprintf(out, "Status:     ✗ indisponível (%v)\n", st.Err)
			return errors.New("validator unavailable")
		}
		fmt.Fprintf(out, "Status:     ✓ ativo\n")
		fmt.Fprintf(out, "LLM:        %v\n", st.LLMAvailable)
		if st.Version != "" {
			fmt.Fprintf(out, "Version:    %s\n", st.Version)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().Duration("timeout", 5*time.Second, "Probe timeout")
}
