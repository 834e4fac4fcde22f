package transfer

import "errors"

var (
	// ErrFormStateMismatch means the submitted source or destination differs
	// from the session's route. It indicates a client or concurrency bug and
	// is never reported as a validation message.
	ErrFormStateMismatch = errors.New("invalid form state")
	// ErrSubmitInFlight is returned when a feasibility check is already pending
	ErrSubmitInFlight = errors.New("feasibility check already in flight")
	// ErrStaleResult is returned when a result arrives for a route the user
	// has since changed. The result is dropped.
	ErrStaleResult = errors.New("result does not match the current route")
	// ErrWalletNotConnected is returned when no signer is available for the
	// source chain.
	ErrWalletNotConnected = errors.New("wallet not connected")
	// ErrSessionNotFound is returned for unknown or expired session ids
	ErrSessionNotFound = errors.New("session not found")
)
