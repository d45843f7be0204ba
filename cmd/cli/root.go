package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/artesmakar/customizable-text-history-with-regexes/internal/di"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/config"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/logging"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/version"
)

var (
	// Global flags
	settingsPath   string
	transcriptPath string
	verbose        bool
	quiet          bool

	// App instance - initialized once and reused by subcommands
	app *di.App
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "histfmt",
	Short:   "Format conversation history for prompt injection",
	Long:    `histfmt renders a conversation transcript into a single text block using a token-budget window and an ordered regex rewrite pipeline.`,
	Version: version.GetInfo().Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A local .env can hold HISTFMT_* overrides; absence is fine
		_ = godotenv.Load()

		var logger logging.Logger
		if quiet {
			logger = logging.NewQuietLogger()
		} else if verbose {
			logger = logging.NewVerboseLogger()
		} else {
			logger = logging.NewDefaultLogger()
		}
		logging.SetGlobalLogger(logger)

		path := settingsPath
		if path == "" {
			if defaultPath, err := config.DefaultSettingsPath(); err == nil {
				path = defaultPath
			} else {
				logger.Warn("could not resolve home directory, using defaults only", "error", err)
			}
		}

		if transcriptPath != "" {
			app = di.InitializeFileApp(di.SettingsPath(path), di.TranscriptPath(transcriptPath))
		} else {
			app = di.InitializeApp(di.SettingsPath(path))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand - print the formatted history
		cmd.Println(app.Pipeline.BuildFormattedHistory(""))
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file (default: ~/.config/histfmt/settings.yaml)")
	RootCmd.PersistentFlags().StringVarP(&transcriptPath, "transcript", "t", "", "YAML transcript file to read the conversation from")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")

	RootCmd.AddCommand(NewFormatCommand())
	RootCmd.AddCommand(NewCopyCommand())
	RootCmd.AddCommand(NewLastCommand())
	RootCmd.AddCommand(NewExpandCommand())
	RootCmd.AddCommand(NewStylesCommand())
}
