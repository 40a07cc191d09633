package commands

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/legacychain/cmd/legacychain/commands/create"
	"github.com/arthur-debert/legacychain/cmd/legacychain/commands/execute"
	"github.com/arthur-debert/legacychain/cmd/legacychain/commands/genconfig"
	"github.com/arthur-debert/legacychain/cmd/legacychain/commands/get"
	versioncmd "github.com/arthur-debert/legacychain/cmd/legacychain/commands/version"
	"github.com/arthur-debert/legacychain/internal/cli"
	"github.com/arthur-debert/legacychain/internal/version"
	"github.com/arthur-debert/legacychain/pkg/cobrax/topics"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &cli.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:     "legacychain",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but still fail
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", MsgFlagDataDir)

	rootCmd.AddGroup(&cobra.Group{ID: "registry", Title: MsgGroupRegistry})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: MsgGroupConfig})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(create.NewCommand(opts))
	rootCmd.AddCommand(get.NewCommand(opts))
	rootCmd.AddCommand(execute.NewCommand(opts))
	rootCmd.AddCommand(genconfig.NewCommand(opts))
	rootCmd.AddCommand(versioncmd.NewCommand())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, served from the embedded topics directory
	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, source, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf(MsgErrUnsupported, args[0])
		},
	}
}
