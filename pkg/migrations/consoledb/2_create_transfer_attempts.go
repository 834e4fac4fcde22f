package consoledb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-console/pkg/attemptstore"
	mghelper "github.com/chainsafe/bridge-console/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transfer_attempts table...")
		if err := mghelper.CreateSchema(ctx, db, &attemptstore.AttemptDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &attemptstore.AttemptDao{}, "session_id", "result", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transfer_attempts table...")
		return mghelper.DropTables(ctx, db, &attemptstore.AttemptDao{})
	})
}
