// Package attemptstore persists the audit trail of transfer form submits
package attemptstore

import (
	"context"

	"github.com/chainsafe/bridge-console/pkg/transfer"
)

// Store defines the interface for submit attempt persistence
type Store interface {
	RecordAttempt(ctx context.Context, attempt *transfer.Attempt) error
	ListAttempts(ctx context.Context, opts ...QueryOption) ([]*transfer.Attempt, error)
}

// QueryOptions defines options for listing attempts
type QueryOptions struct {
	SessionID *string
	Result    *transfer.AttemptResult
	Limit     int
}

// QueryOption configures QueryOptions
type QueryOption func(*QueryOptions)

// WithSessionID filters attempts by form session
func WithSessionID(id string) QueryOption {
	return func(o *QueryOptions) {
		o.SessionID = &id
	}
}

// WithResult filters attempts by result
func WithResult(result transfer.AttemptResult) QueryOption {
	return func(o *QueryOptions) {
		o.Result = &result
	}
}

// WithLimit caps the number of returned attempts
func WithLimit(limit int) QueryOption {
	return func(o *QueryOptions) {
		o.Limit = limit
	}
}
