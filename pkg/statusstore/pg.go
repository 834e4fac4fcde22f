// Package statusstore persists bridge status snapshots in PostgreSQL
package statusstore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-console/pkg/status"
)

const defaultListLimit = 100

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of status.SnapshotStore
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) SaveSnapshot(ctx context.Context, snap *status.Snapshot) error {
	dao := toSnapshotDao(snap)
	dao.ID = 0

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("id, fetched_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save status snapshot: %w", err)
	}

	snap.ID = dao.ID
	snap.FetchedAt = dao.FetchedAt
	return nil
}

func (s *pgStore) ListSnapshots(ctx context.Context, limit int) ([]*status.Snapshot, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var daos []SnapshotDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("fetched_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status snapshots: %w", err)
	}

	snaps := make([]*status.Snapshot, len(daos))
	for i := range daos {
		snaps[i] = toSnapshot(&daos[i])
	}
	return snaps, nil
}
