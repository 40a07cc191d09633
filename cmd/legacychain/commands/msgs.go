package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "A registry of one-shot digital wills"
	MsgCompletionShort = "Generate shell completion script"

	MsgErrorFormat    = "Error: %v\n"
	MsgErrNoCommand   = "no command specified"
	MsgErrUnsupported = "unsupported shell: %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/legacychain/config.toml)"
	MsgFlagDataDir = "Data directory; wills are stored in <data-dir>/wills"

	// Command groups
	MsgGroupRegistry = "REGISTRY:"
	MsgGroupConfig   = "CONFIGURATION:"
	MsgGroupMisc     = "MISC:"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
