package attemptstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-console/pkg/plan"
	"github.com/chainsafe/bridge-console/pkg/transfer"
)

// AttemptDao is a data access object that maps directly to the 'transfer_attempts' table in PostgreSQL.
type AttemptDao struct {
	bun.BaseModel `bun:"table:transfer_attempts,alias:ta"`
	ID            string    `bun:"id,pk,type:uuid"`
	SessionID     string    `bun:"session_id,notnull,type:uuid"`
	Direction     string    `bun:"direction,notnull,type:varchar(20)"`
	Source        string    `bun:"source,notnull,type:text"`
	Destination   string    `bun:"destination,notnull,type:text"`
	Token         string    `bun:"token,notnull,type:text"`
	Amount        string    `bun:"amount,notnull,type:text"`
	Beneficiary   string    `bun:"beneficiary,notnull,type:text"`
	Result        string    `bun:"result,notnull,type:varchar(32)"`
	Errors        []string  `bun:"errors,type:jsonb"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toAttemptDao(a *transfer.Attempt) *AttemptDao {
	return &AttemptDao{
		ID:          a.ID,
		SessionID:   a.SessionID,
		Direction:   string(a.Direction),
		Source:      a.Values.Source,
		Destination: a.Values.Destination,
		Token:       a.Values.Token,
		Amount:      a.Values.Amount,
		Beneficiary: a.Values.Beneficiary,
		Result:      string(a.Result),
		Errors:      a.Errors,
		CreatedAt:   a.CreatedAt,
	}
}

func toAttempt(dao *AttemptDao) *transfer.Attempt {
	return &transfer.Attempt{
		ID:        dao.ID,
		SessionID: dao.SessionID,
		Direction: plan.Direction(dao.Direction),
		Values: transfer.FormValues{
			Source:      dao.Source,
			Destination: dao.Destination,
			Token:       dao.Token,
			Amount:      dao.Amount,
			Beneficiary: dao.Beneficiary,
		},
		Result:    transfer.AttemptResult(dao.Result),
		Errors:    dao.Errors,
		CreatedAt: dao.CreatedAt,
	}
}
