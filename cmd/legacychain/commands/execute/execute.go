package execute

import (
	"fmt"

	"github.com/arthur-debert/legacychain/internal/cli"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/spf13/cobra"
)

// NewCommand creates the execute command
func NewCommand(opts *cli.GlobalOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:     "execute <owner>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(logging.GetLogger("cmd.execute"), "execute")()

			owner, err := cli.ParseIdentity(MsgErrOwner, args[0])
			if err != nil {
				return err
			}

			app, err := cli.Bootstrap(opts)
			if err != nil {
				return err
			}

			if err := app.Registry.Execute(app.Caller(as), owner); err != nil {
				return err
			}

			// Execute is silent about missing wills; tell the user which case it was
			rec, err := app.Registry.Get(owner)
			if err != nil {
				return err
			}
			if rec == nil {
				fmt.Fprintf(cmd.OutOrStdout(), MsgNoWill, owner)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgExecuted, owner)
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", MsgFlagAs)

	return cmd
}
