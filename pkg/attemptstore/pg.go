package attemptstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-console/pkg/transfer"
)

const defaultListLimit = 100

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the attempt store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) RecordAttempt(ctx context.Context, attempt *transfer.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	dao := toAttemptDao(attempt)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	attempt.CreatedAt = dao.CreatedAt
	return nil
}

func (s *pgStore) ListAttempts(ctx context.Context, opts ...QueryOption) ([]*transfer.Attempt, error) {
	options := &QueryOptions{Limit: defaultListLimit}
	for _, opt := range opts {
		opt(options)
	}

	var daos []AttemptDao
	query := s.db.NewSelect().
		Model(&daos).
		Order("created_at DESC", "id").
		Limit(options.Limit)

	if options.SessionID != nil {
		query = query.Where("session_id = ?", *options.SessionID)
	}
	if options.Result != nil {
		query = query.Where("result = ?", string(*options.Result))
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	attempts := make([]*transfer.Attempt, len(daos))
	for i := range daos {
		attempts[i] = toAttempt(&daos[i])
	}
	return attempts, nil
}
