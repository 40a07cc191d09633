package genconfig

// Message constants
const (
	MsgShort   = "Generate the default configuration file"
	MsgLong    = "Output the default configuration to stdout, or write it to the config file with -w.\n\nThe file is written to --config when given, otherwise to $XDG_CONFIG_HOME/legacychain/config.toml.\nAn existing file is never overwritten."
	MsgExample = `  legacychain gen-config                 # Output to stdout
  legacychain gen-config -w              # Write to the default config path
  legacychain gen-config -w --config ./legacychain.toml`
	MsgFlagWrite = "Write config to file instead of stdout"
	MsgWritten   = "Wrote default configuration to %s\n"
)
