package commands

import (
	"github.com/rs/zerolog"
	"github.com/snylonue/multirep/pkg/log"
	"github.com/snylonue/multirep/pkg/operation"
	"github.com/snylonue/multirep/pkg/text"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *Opts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the rules file to the working tree",
		Long: `Apply loads the rules file, walks the configured root and substitutes
every rule in one simultaneous pass per file. Changed files are written
atomically; binary files are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			cfg, err := opts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			logger := log.New(cmd.OutOrStdout(), zerolog.InfoLevel)
			op, err := operation.New(operation.Options{
				Config:   cfg,
				Replacer: text.NewSimultaneousReplacer(),
				Logger:   logger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			logger.StartRun(ctx, log.RunOperation{
				ConfigPath: *opts.ConfigFile,
				Root:       cfg.Paths.Root,
				Rules:      len(cfg.Rules()),
			})
			results, err := op.Apply(ctx)
			logger.EndRun(ctx)
			if err != nil {
				return errors.Errorf("applying rules: %w", err)
			}

			changed, replacements := summarize(results)
			logger.Successf("%d files changed, %d replacements", changed, replacements)
			return nil
		},
	}

	return cmd
}
