package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewExpandCommand creates the expand command.
func NewExpandCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand history macros inside a prompt",
		Long: `Read a prompt from a file (or stdin) and replace every {{history}},
{{history::N}}, {{lastMessage}} and {{lastUserMessage}} placeholder with the
pipeline's output. Unknown placeholders pass through untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload []byte
			var err error
			if len(args) == 1 {
				payload, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read prompt: %w", err)
				}
			} else {
				payload, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			cmd.Print(app.Macros.Expand(string(payload)))
			return nil
		},
	}
}
