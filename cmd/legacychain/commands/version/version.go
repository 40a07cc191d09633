package version

import (
	"fmt"

	"github.com/arthur-debert/legacychain/internal/version"
	"github.com/spf13/cobra"
)

// NewCommand creates the version command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}
