package cmd

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/app"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// The credential may arrive later (stored key or the setup form), so
	// only the provider name is checked here.
	cfg := llm.ConfigFromEnv()
	switch cfg.Provider {
	case "gemini", "anthropic", "openai", "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	return app.Run(app.Options{
		Store:  st,
		LLMCfg: cfg,
	})
}
