package get

import (
	"github.com/arthur-debert/legacychain/internal/cli"
	"github.com/arthur-debert/legacychain/pkg/ui"
	"github.com/spf13/cobra"
)

// NewCommand creates the get command
func NewCommand(opts *cli.GlobalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "get <owner>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := cli.ParseIdentity(MsgErrOwner, args[0])
			if err != nil {
				return err
			}

			app, err := cli.Bootstrap(opts)
			if err != nil {
				return err
			}

			if format == "" {
				format = app.Config.Output.Format
			}
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			rec, err := app.Registry.Get(owner)
			if err != nil {
				return err
			}
			return ui.RenderWill(cmd.OutOrStdout(), owner, rec, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
