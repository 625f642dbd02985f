package identity

import "errors"

var (
	// ErrAccountExists indicates a registration attempt with an email that
	// is already taken.
	ErrAccountExists = errors.New("identity.account_exists")

	// ErrInvalidCredentials indicates authentication failure. It is
	// deliberately the same for an unknown email and a wrong secret so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("identity.invalid_credentials")

	// ErrNoActiveSession indicates no session exists for the operation.
	ErrNoActiveSession = errors.New("identity.no_active_session")

	// ErrInvalidDifficulty indicates a profile update carried a difficulty
	// outside the enumerated values.
	ErrInvalidDifficulty = errors.New("identity.invalid_difficulty")

	// ErrCorruptState indicates persisted data failed to parse. Operations
	// recover from it internally by treating the data as absent; it is
	// exposed for logging and tests, not returned to callers.
	ErrCorruptState = errors.New("identity.corrupt_state")
)
