package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete logged LLM events (and optionally the stored API key)",
	RunE: func(cmd *cobra.Command, args []string) error {
		keepKey, _ := cmd.Flags().GetBool("keep-key")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		n, err := s.EventRepo().PurgeLLMEvents(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d LLM events.\n", n)

		if !keepKey {
			if err := s.CredentialRepo().Clear(ctx); err != nil {
				return fmt.Errorf("clear key: %w", err)
			}
			fmt.Println("API key cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("keep-key", false, "Keep the stored API key")
}
