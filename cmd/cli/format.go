package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/format"
)

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print the formatted conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			style, _ := cmd.Flags().GetString("style")
			lastN, _ := cmd.Flags().GetInt("last-n")

			if lastN > 0 {
				cmd.Println(app.Pipeline.LastTurns(lastN, style))
				return nil
			}
			cmd.Println(app.Pipeline.BuildFormattedHistory(style))
			return nil
		},
	}

	cmd.Flags().StringP("style", "s", "", "output style ("+strings.Join(format.Styles(), ", ")+")")
	cmd.Flags().IntP("last-n", "n", 0, "only render the N most recent selected turns")
	return cmd
}

// NewStylesCommand creates the styles command.
func NewStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available output styles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range format.Styles() {
				cmd.Println(name)
			}
		},
	}
}
