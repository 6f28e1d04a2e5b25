package commands

import (
	"io"

	"github.com/snylonue/multirep/pkg/multirep"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewExchangeCmd creates a new exchange command
func NewExchangeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "exchange A B",
		Short: "Swap two patterns with each other",
		Long: `Exchange reads from stdin (or --file) and swaps every occurrence of A
with B and vice versa in one pass, so neither substitution corrupts the
other even when one pattern contains the other.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" || args[1] == "" {
				return errors.Errorf("patterns must be non-empty")
			}

			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}

			if _, err := io.WriteString(cmd.OutOrStdout(), multirep.Exchange(source, args[0], args[1])); err != nil {
				return errors.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	return cmd
}
