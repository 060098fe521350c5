package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rejectArgs prints the usage line on stdout when any positional argument is given.
func rejectArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "usage: %s\n", cmd.Name())
	return ErrUsage
}
