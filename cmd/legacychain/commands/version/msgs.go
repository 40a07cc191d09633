package version

// Message constants
const (
	MsgShort = "Print version information"
	MsgLong  = "Print version, commit and build date of this legacychain binary"
)
