package registry

import (
	"github.com/arthur-debert/legacychain/pkg/auth"
	"github.com/arthur-debert/legacychain/pkg/datastore"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/rs/zerolog"
)

// ExecutionHook runs after an execution has been validated and before the
// executed record is persisted. Returning an error aborts the execution.
// Asset transfer to beneficiaries plugs in here.
type ExecutionHook func(owner types.Identity, record types.WillRecord) error

// Option configures a Registry
type Option func(*Registry)

// WithExecutionHook sets the hook invoked by Execute
func WithExecutionHook(hook ExecutionHook) Option {
	return func(r *Registry) {
		if hook != nil {
			r.hook = hook
		}
	}
}

// WithLogger replaces the registry's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry owns the owner -> will record mapping held in a Store
type Registry struct {
	store  datastore.Store
	authz  auth.Authorizer
	hook   ExecutionHook
	logger zerolog.Logger
}

// New creates a Registry over store, authorizing mutations with authz
func New(store datastore.Store, authz auth.Authorizer, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		authz:  authz,
		hook:   noopHook,
		logger: logging.GetLogger("registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func noopHook(types.Identity, types.WillRecord) error { return nil }

// Create registers a will for owner. The caller must be authorized for owner.
// Any existing record for owner is replaced, including an executed one.
func (r *Registry) Create(caller, owner types.Identity, contentHash string, beneficiaries []types.Identity) error {
	logger := r.logger.With().
		Str("caller", caller.String()).
		Str("owner", owner.String()).
		Logger()

	if err := r.authz.RequireAuth(caller, owner); err != nil {
		logger.Warn().Err(err).Msg("Will creation rejected")
		if errors.IsErrorCode(err, errors.ErrUnauthorized) {
			return err
		}
		return errors.Wrap(err, errors.ErrUnauthorized, "authorization failed").
			WithDetail("caller", caller.String()).
			WithDetail("owner", owner.String())
	}

	record := types.NewWillRecord(contentHash, beneficiaries)
	if err := r.store.Set(owner, record); err != nil {
		return err
	}

	logger.Info().
		Str("contentHash", contentHash).
		Int("beneficiaries", len(record.Beneficiaries)).
		Msg("Will created")
	return nil
}

// Get returns owner's will, or nil when none has been created. Reads are
// not authorized.
func (r *Registry) Get(owner types.Identity) (*types.WillRecord, error) {
	record, err := r.store.Get(owner)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().
		Str("owner", owner.String()).
		Bool("found", record != nil).
		Msg("Will looked up")
	return record, nil
}

// Execute marks owner's will as executed.
//
// Executing an owner with no will does nothing and returns nil. Executing an
// already executed will fails with ALREADY_EXECUTED and changes nothing. The
// caller is recorded in logs but not authorized.
func (r *Registry) Execute(caller, owner types.Identity) error {
	logger := r.logger.With().
		Str("caller", caller.String()).
		Str("owner", owner.String()).
		Logger()

	record, err := r.store.Get(owner)
	if err != nil {
		return err
	}
	if record == nil {
		logger.Debug().Msg("No will to execute")
		return nil
	}
	if record.Executed {
		logger.Warn().Msg("Will already executed")
		return errors.Newf(errors.ErrAlreadyExecuted, "will for %s already executed", owner).
			WithDetail("owner", owner.String())
	}

	if err := r.hook(owner, record.Clone()); err != nil {
		logger.Warn().Err(err).Msg("Execution hook failed")
		return errors.Wrapf(err, errors.ErrExecutionHook, "execution hook failed for %s", owner).
			WithDetail("owner", owner.String())
	}

	record.Executed = true
	if err := r.store.Set(owner, *record); err != nil {
		return err
	}

	logger.Info().
		Int("beneficiaries", len(record.Beneficiaries)).
		Msg("Will executed")
	return nil
}
