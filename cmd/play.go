package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/conectivo/internal/app"
	"github.com/abhisek/conectivo/internal/catalog"
	"github.com/abhisek/conectivo/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().Int("table", 0, "Start on this table (1-based); 0 picks one at random")
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")
}

func runPlay(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := catalog.Validate(); err != nil {
		return err
	}

	chain, remote := newValidator(cfg, log)
	variants := catalog.Variants()

	table, noSplash := 0, false
	if cmd.Flags().Lookup("table") != nil {
		table, _ = cmd.Flags().GetInt("table")
		noSplash, _ = cmd.Flags().GetBool("no-splash")
	}
	switch {
	case table == 0:
		table = rand.IntN(len(variants)) + 1
	case table < 1 || table > len(variants):
		return fmt.Errorf("--table must be between 1 and %d", len(variants))
	}

	sess, err := quiz.NewSession(variants, chain,
		quiz.WithLogger(log),
		quiz.WithVariant(table-1),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	appOpts := app.Options{Session: sess, Log: log, Splash: !noSplash}
	if remote != nil {
		appOpts.Prober = remote
	}
	log.Info("starting quiz",
		"session_id", sess.ID(),
		"variant", sess.Variant().Name,
		"remote_validator", chain.Remote(),
	)
	return app.Run(appOpts)
}
