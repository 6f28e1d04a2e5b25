package commands

import (
	"github.com/snylonue/multirep/pkg/multirep"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewReplaceCmd creates a new replace command
func NewReplaceCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "replace OLD NEW [OLD NEW ...]",
		Short: "Replace literal patterns in one input",
		Long: `Replace reads from stdin (or --file), substitutes every OLD/NEW pair in
one simultaneous pass and prints the result to stdout. Earlier pairs win
overlapping matches and replacement text is never rescanned.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return errors.Errorf("replace needs OLD NEW pairs, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, file)
			if err != nil {
				return err
			}

			pairs := make([]multirep.Pair, 0, len(args)/2)
			for i := 0; i < len(args); i += 2 {
				pairs = append(pairs, multirep.Pair{Old: args[i], New: args[i+1]})
			}

			r := multirep.NewReplacer(pairs...)
			if _, err := r.WriteString(cmd.OutOrStdout(), source); err != nil {
				return errors.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	return cmd
}
