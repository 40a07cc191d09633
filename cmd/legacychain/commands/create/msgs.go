package create

// Message constants
const (
	MsgShort = "Register a will for an owner"
	MsgLong  = `Create registers a will for <owner>: the content hash of the will document
and zero or more beneficiary identities. The caller must be the owner; it is
taken from --as, falling back to the configured identity.

With --file, the content hash is computed from the will document (SHA256) and
every argument after <owner> is a beneficiary.

Creating a will for an owner that already has one replaces it, executed or not.`
	MsgExample = `  legacychain create GOWNER abc123 GBENEFICIARY1 GBENEFICIARY2 --as GOWNER
  legacychain create GOWNER --file will.pdf GBENEFICIARY1 --as GOWNER
  legacychain create GOWNER abc123               # caller from config identity`
	MsgFlagAs    = "Identity to act as (defaults to the configured identity)"
	MsgFlagFile  = "Will document to hash instead of passing <content-hash>"
	MsgCreated   = "Registered will for %s (%d beneficiaries)\n"
	MsgErrOwner  = "owner"
	MsgErrNoHash = "a content hash or --file is required"
)
