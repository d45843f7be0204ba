package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// NewCopyCommand creates the copy command.
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the formatted conversation history to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			style, _ := cmd.Flags().GetString("style")

			text := app.Pipeline.BuildFormattedHistory(style)
			if err := clipboard.WriteAll(text); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			cmd.Printf("Copied %d characters to clipboard\n", len(text))
			return nil
		},
	}

	cmd.Flags().StringP("style", "s", "", "output style")
	return cmd
}
