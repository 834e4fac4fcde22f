package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/bridge-console/pkg/migrations/consoledb"
	"github.com/chainsafe/bridge-console/pkg/pgutil"
	mghelper "github.com/chainsafe/bridge-console/pkg/pgutil/migrations"
)

func newMigrator(t *testing.T) (context.Context, *bun.DB, *migrate.Migrator) {
	t.Helper()
	db, _ := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, consoledb.Migrations)
	require.NoError(t, migrator.Init(ctx))
	return ctx, db, migrator
}

func TestConsoleDB_Apply(t *testing.T) {
	ctx, db, migrator := newMigrator(t)

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero(), "expected migrations to run")

	for _, table := range []string{"status_snapshots", "transfer_attempts", "bun_migrations"} {
		pgutil.AssertTableExists(t, db, table)
	}
	for _, index := range []string{
		"idx_status_snapshots_fetched_at",
		"idx_status_snapshots_overall_status",
		"idx_transfer_attempts_session_id",
		"idx_transfer_attempts_result",
		"idx_transfer_attempts_created_at",
	} {
		pgutil.AssertIndexExists(t, db, index)
	}
}

func TestConsoleDB_SecondRunIsNoop(t *testing.T) {
	ctx, db, migrator := newMigrator(t)

	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.True(t, group.IsZero(), "expected nothing to migrate on the second run")

	pgutil.AssertRowCount(t, db, "transfer_attempts", 0)
	pgutil.AssertRowCount(t, db, "status_snapshots", 0)
}

func TestConsoleDB_Rollback(t *testing.T) {
	ctx, db, migrator := newMigrator(t)

	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	group, err := migrator.Rollback(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero(), "expected a group to roll back")

	pgutil.AssertTableNotExists(t, db, "transfer_attempts")
	pgutil.AssertTableNotExists(t, db, "status_snapshots")
}

func TestConsoleDB_RunMigrationsCommand(t *testing.T) {
	ctx, db, migrator := newMigrator(t)

	require.NoError(t, mghelper.RunMigrations(ctx, migrator, "up"))
	pgutil.AssertTableExists(t, db, "transfer_attempts")

	require.NoError(t, mghelper.RunMigrations(ctx, migrator, "status"))
	require.NoError(t, mghelper.RunMigrations(ctx, migrator, "down"))
	pgutil.AssertTableNotExists(t, db, "transfer_attempts")

	assert.Error(t, mghelper.RunMigrations(ctx, migrator, "sideways"))
	assert.Error(t, mghelper.RunMigrations(ctx, migrator))
}
