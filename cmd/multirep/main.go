package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/snylonue/multirep/cmd/multirep/commands"
	"github.com/spf13/cobra"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "multirep",
		Short: "Replace multiple literal patterns in text at once",
		Long: `multirep substitutes an ordered list of literal patterns in one
simultaneous pass: every pattern is matched against the original text, so
replacement text is never rescanned by a later pattern and earlier patterns
win overlapping matches.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	opts := &commands.Opts{ConfigFile: &configFile}
	rootCmd.AddCommand(
		commands.NewApplyCmd(opts),
		commands.NewStatusCmd(opts),
		commands.NewReplaceCmd(),
		commands.NewExchangeCmd(),
	)

	ctx := log.Logger.WithContext(context.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
