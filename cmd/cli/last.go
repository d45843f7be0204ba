package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/conversation"
)

// NewLastCommand creates the last command.
func NewLastCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last",
		Short: "Print the newest turn of a given role",
		Long:  `Print the newest turn of the given role from the raw conversation, ignoring the skip/drop toggles and the token window.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			style, _ := cmd.Flags().GetString("style")
			raw, _ := cmd.Flags().GetBool("raw")

			if role != "user" && role != "other" {
				return fmt.Errorf("invalid role %q (want user or other)", role)
			}
			speaker := conversation.ParseSpeaker(role)

			if raw {
				turn, ok := app.Pipeline.LastMatchingTurn(speaker)
				if !ok {
					return nil
				}
				cmd.Println(turn.Text)
				return nil
			}
			cmd.Println(app.Pipeline.LastMatchingTurnFormatted(speaker, style))
			return nil
		},
	}

	cmd.Flags().StringP("role", "r", "other", "which side to look for (user or other)")
	cmd.Flags().StringP("style", "s", "", "output style")
	cmd.Flags().Bool("raw", false, "print the message text without formatting or rewrites")
	return cmd
}
