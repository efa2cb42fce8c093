package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/conectivo/internal/grader"
	"github.com/abhisek/conectivo/internal/llm"
	"github.com/abhisek/conectivo/internal/logging"
	"github.com/abhisek/conectivo/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sentence validation server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("bind") {
			cfg.Server.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := newLogger(cfg, false)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, err := newGrader(ctx, log)
		if err != nil {
			return err
		}

		srv := server.New(cfg.Server, g, log, version)
		log.Info("validation server starting",
			"addr", cfg.Server.Addr(),
			"llm_available", g.ModelAvailable(),
		)
		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		log.Info("validation server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("bind", "", "Address to bind (overrides config)")
	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides config)")
}

// newGrader builds the grader with an LLM provider when one is configured.
// Without a provider the grader still runs the structural checks.
func newGrader(ctx context.Context, log *logging.Logger) (*grader.Grader, error) {
	llmCfg, ok := llm.ResolveConfig()
	if !ok {
		log.Warn("no LLM provider configured, grammar and semantic checks are skipped")
		return grader.New(grader.WithLogger(log)), nil
	}
	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	log.Info("LLM provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())
	return grader.New(grader.WithProvider(provider), grader.WithLogger(log)), nil
}
