package create

import (
	"fmt"

	"github.com/arthur-debert/legacychain/internal/cli"
	"github.com/arthur-debert/legacychain/internal/hashutil"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/spf13/cobra"
)

// NewCommand creates the create command
func NewCommand(opts *cli.GlobalOptions) *cobra.Command {
	var (
		as       string
		document string
	)

	cmd := &cobra.Command{
		Use:     "create <owner> [<content-hash>] [beneficiary...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(logging.GetLogger("cmd.create"), "create")()

			owner, err := cli.ParseIdentity(MsgErrOwner, args[0])
			if err != nil {
				return err
			}

			rest := args[1:]
			var contentHash string
			if document == "" {
				if len(rest) == 0 {
					return errors.New(errors.ErrInvalidInput, MsgErrNoHash)
				}
				contentHash, rest = rest[0], rest[1:]
			}

			app, err := cli.Bootstrap(opts)
			if err != nil {
				return err
			}

			if document != "" {
				contentHash, err = hashutil.FileChecksum(app.FS, document)
				if err != nil {
					return err
				}
			}

			beneficiaries := types.Identities(rest)
			if err := app.Registry.Create(app.Caller(as), owner, contentHash, beneficiaries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgCreated, owner, len(beneficiaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", MsgFlagAs)
	cmd.Flags().StringVar(&document, "file", "", MsgFlagFile)

	return cmd
}
