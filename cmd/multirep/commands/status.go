package commands

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/snylonue/multirep/pkg/log"
	"github.com/snylonue/multirep/pkg/operation"
	"github.com/snylonue/multirep/pkg/text"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *Opts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which files the rules file would change",
		Long: `Status runs the rules file as a dry run: it walks the configured root
and reports which files would change, without writing anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "status").Logger().WithContext(ctx)

			cfg, err := opts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			op, err := operation.New(operation.Options{
				Config:   cfg,
				Replacer: text.NewSimultaneousReplacer(),
				Logger:   log.New(io.Discard, zerolog.Disabled),
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			results, err := op.Status(ctx)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			changed := 0
			for _, r := range results {
				switch {
				case r.Changed:
					changed++
					pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"}).Printfln("%s (%d replacements)", r.Path, r.Replacements)
				case r.Skipped:
					pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"}).Printfln("%s (%s)", r.Path, r.SkipReason)
				}
			}

			if changed == 0 {
				pterm.Success.Println("nothing to replace")
			} else {
				pterm.Warning.Printfln("%d files would change", changed)
			}
			return nil
		},
	}

	return cmd
}
