package get

// Message constants
const (
	MsgShort = "Show the will registered for an owner"
	MsgLong  = `Get prints the will registered for <owner>. Anyone may read any will.

Output follows --format, falling back to output.format from the config:
auto picks styled terminal output on a tty and plain text otherwise.`
	MsgExample = `  legacychain get GOWNER
  legacychain get GOWNER --format json
  legacychain get GOWNER --format markdown`
	MsgFlagFormat = "Output format (auto, term, text, json, markdown)"
	MsgErrOwner   = "owner"
)
