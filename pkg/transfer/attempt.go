package transfer

import (
	"time"

	"github.com/chainsafe/bridge-console/pkg/plan"
)

// AttemptResult is how a submit attempt ended
type AttemptResult string

const (
	AttemptPassed             AttemptResult = "passed"
	AttemptRejected           AttemptResult = "errors"
	AttemptInvalid            AttemptResult = "invalid"
	AttemptWalletNotConnected AttemptResult = "wallet_not_connected"
	AttemptFailed             AttemptResult = "failed"
	AttemptStale              AttemptResult = "stale"
)

// Attempt is the audit record of one submit
type Attempt struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId"`
	Direction plan.Direction `json:"direction"`
	Values    FormValues     `json:"values"`
	Result    AttemptResult  `json:"result"`
	Errors    []string       `json:"errors,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
