package consoledb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/bridge-console/pkg/pgutil/migrations"
	"github.com/chainsafe/bridge-console/pkg/statusstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating status_snapshots table...")
		if err := mghelper.CreateSchema(ctx, db, &statusstore.SnapshotDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &statusstore.SnapshotDao{}, "fetched_at", "overall_status")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping status_snapshots table...")
		return mghelper.DropTables(ctx, db, &statusstore.SnapshotDao{})
	})
}
