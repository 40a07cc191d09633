package execute

// Message constants
const (
	MsgShort = "Execute the will registered for an owner"
	MsgLong  = `Execute marks the will registered for <owner> as executed and releases it
to its beneficiaries. A will can only be executed once.

Executing an owner with no will is not an error; nothing happens.
The --as identity is recorded in the log but not checked.`
	MsgExample = `  legacychain execute GOWNER
  legacychain execute GOWNER --as GEXECUTOR`
	MsgFlagAs   = "Identity to act as (defaults to the configured identity)"
	MsgExecuted = "Executed will for %s\n"
	MsgNoWill   = "No will registered for %s; nothing to execute\n"
	MsgErrOwner = "owner"
)
