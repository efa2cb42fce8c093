package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/conectivo/internal/config"
	"github.com/abhisek/conectivo/internal/logging"
	"github.com/abhisek/conectivo/internal/sentence"
)

var rootCmd = &cobra.Command{
	Use:   "conectivo",
	Short: "Sentence connective quiz",
	Long:  "Conectivo: a terminal quiz for practising Portuguese sentence connectives, with an optional validation server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/conectivo/config.yaml)")
	rootCmd.PersistentFlags().String("validator-url", "", "Remote sentence validator base URL (overrides config; \"off\" disables)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies
// command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("validator-url") {
		u, _ := cmd.Flags().GetString("validator-url")
		if u == "off" {
			u = ""
		}
		cfg.Validator.URL = u
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger. The terminal UI must log to a file
// so output never lands on the alt screen.
func newLogger(cfg *config.Config, toFile bool) (*logging.Logger, error) {
	opts := logging.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level}
	if toFile {
		opts.File = cfg.Log.File
		if opts.File == "" {
			p, err := config.DefaultLogFile()
			if err != nil {
				return nil, fmt.Errorf("resolve log file: %w", err)
			}
			opts.File = p
		}
	}
	return logging.New(opts)
}

// newValidator builds the validation chain. remote is nil when no
// validator URL is configured.
func newValidator(cfg *config.Config, log *logging.Logger) (chain *sentence.Chain, remote *sentence.Remote) {
	if cfg.Validator.URL == "" {
		return sentence.NewChain(nil, log), nil
	}
	remote = sentence.NewRemote(cfg.Validator.URL, cfg.Validator.Timeout)
	return sentence.NewChain(remote, log), remote
}
