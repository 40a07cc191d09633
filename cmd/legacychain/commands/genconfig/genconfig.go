package genconfig

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/legacychain/internal/cli"
	"github.com/arthur-debert/legacychain/pkg/config"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/filesystem"
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand(opts *cli.GlobalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path, _, err := cli.ConfigFile(opts)
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			if _, err := fsys.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "config file %s already exists", path).
					WithDetail("path", path)
			}
			if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path))
			}
			if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
