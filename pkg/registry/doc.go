// Package registry implements the will registry: the state machine that
// creates, reads and executes will records.
//
// Each owner has at most one record. A record starts unexecuted and moves to
// executed exactly once:
//
//	Create(caller, owner, hash, beneficiaries)  -> {hash, beneficiaries, executed: false}
//	Execute(caller, owner)                      -> executed: true
//	Execute(caller, owner) again                -> ALREADY_EXECUTED
//
// Create requires the caller to be authorized for the owner. Execute does not
// check the caller, and executing an owner without a record is a no-op.
// Create overwrites an existing record, executed or not.
package registry
