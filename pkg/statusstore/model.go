package statusstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-console/pkg/status"
)

// SnapshotDao is a data access object that maps directly to the 'status_snapshots' table in PostgreSQL.
// The summary columns are denormalized from the payload for querying.
type SnapshotDao struct {
	bun.BaseModel     `bun:"table:status_snapshots,alias:ss"`
	ID                int64                `bun:"id,pk,autoincrement"`
	OverallStatus     string               `bun:"overall_status,notnull,type:varchar(16)"`
	ToPolkadotMode    string               `bun:"to_polkadot_mode,notnull,type:varchar(16)"`
	ToEthereumMode    string               `bun:"to_ethereum_mode,notnull,type:varchar(16)"`
	ToPolkadotLatency int64                `bun:"to_polkadot_latency,notnull"`
	ToEthereumLatency int64                `bun:"to_ethereum_latency,notnull"`
	Payload           *status.BridgeStatus `bun:"payload,type:jsonb,notnull"`
	FetchedAt         time.Time            `bun:"fetched_at,nullzero,notnull,default:current_timestamp"`
}

func toSnapshotDao(s *status.Snapshot) *SnapshotDao {
	st := s.Status
	return &SnapshotDao{
		ID:                s.ID,
		OverallStatus:     string(st.Summary.OverallStatus),
		ToPolkadotMode:    string(st.Summary.ToPolkadotOperatingMode),
		ToEthereumMode:    string(st.Summary.ToEthereumOperatingMode),
		ToPolkadotLatency: int64(st.StatusInfo.ToPolkadot.LatencySeconds),
		ToEthereumLatency: int64(st.StatusInfo.ToEthereum.LatencySeconds),
		Payload:           &st,
		FetchedAt:         s.FetchedAt,
	}
}

func toSnapshot(dao *SnapshotDao) *status.Snapshot {
	snap := &status.Snapshot{ID: dao.ID, FetchedAt: dao.FetchedAt}
	if dao.Payload != nil {
		snap.Status = *dao.Payload
	}
	snap.Status.Summary = status.Summary{
		OverallStatus:           status.Mode(dao.OverallStatus),
		ToPolkadotOperatingMode: status.Mode(dao.ToPolkadotMode),
		ToEthereumOperatingMode: status.Mode(dao.ToEthereumMode),
	}
	return snap
}
