package commands

import (
	"context"
	"io"
	"os"

	"github.com/snylonue/multirep/pkg/config"
	"github.com/snylonue/multirep/pkg/operation"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// Opts carries shared root-command state into subcommands
type Opts struct {
	// ConfigFile points at the --config flag value, read at run time
	ConfigFile *string
}

// LoadConfig loads and validates the rules file
func (o *Opts) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, *o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// summarize totals the changed files and replacements in a run
func summarize(results []operation.FileResult) (changed, replacements int) {
	for _, r := range results {
		if r.Changed {
			changed++
		}
		replacements += r.Replacements
	}
	return changed, replacements
}

// readSource reads the ad-hoc input text from --file or stdin
func readSource(cmd *cobra.Command, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
