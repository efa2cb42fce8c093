package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conectivo/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show which LLM provider the grader would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.ResolveConfig()
		printLLMConfig(cmd.OutOrStdout(), cfg, ok)
		return nil
	},
}

func printLLMConfig(w io.Writer, cfg llm.Config, ok bool) {
	if !ok {
		fmt.Fprintln(w, "No LLM provider configured; grammar and semantic checks pass by default.")
		fmt.Fprintln(w, "Set CONECTIVO_LLM_PROVIDER with a matching key, or one of GEMINI_API_KEY,")
		fmt.Fprintln(w, "OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY.")
		return
	}

	rows := []struct {
		name, model string
		keySet      bool
	}{
		{llm.ProviderAnthropic, cfg.Anthropic.Model, cfg.Anthropic.APIKey != ""},
		{llm.ProviderOpenAI, cfg.OpenAI.Model, cfg.OpenAI.APIKey != ""},
		{llm.ProviderGemini, cfg.Gemini.Model, cfg.Gemini.APIKey != ""},
		{llm.ProviderOpenRouter, cfg.OpenRouter.Model, cfg.OpenRouter.APIKey != ""},
	}

	fmt.Fprintf(w, "%-2s  %-11s  %-32s  %s\n", "", "Provider", "Model", "Key")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	for _, r := range rows {
		active := ""
		if r.name == cfg.Provider {
			active = "▸"
		}
		key := "✗"
		if r.keySet {
			key = "✓"
		}
		fmt.Fprintf(w, "%-2s  %-11s  %-32s  %s\n", active, r.name, r.model, key)
	}
	fmt.Fprintf(w, "\nTimeout %s, up to %d attempts\n", cfg.Timeout, cfg.Retry.MaxAttempts)
}
