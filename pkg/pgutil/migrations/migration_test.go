package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/bridge-console/pkg/config"
	"github.com/chainsafe/bridge-console/pkg/pgutil"
)

type sampleDao struct {
	bun.BaseModel `bun:"table:sample_rows"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Chain         string `bun:",nullzero"`
}

func setupDB(t *testing.T) (context.Context, *bun.DB) {
	t.Helper()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)
	return context.Background(), db
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Enabled:  true,
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "console",
		Password: "console",
		Database: "console",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg, nil)
	if err == nil {
		_ = db.Close()
	}
	require.Error(t, err)
}

func TestCreateAndDropSchema(t *testing.T) {
	ctx, db := setupDB(t)

	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}))
	pgutil.AssertTableExists(t, db, "sample_rows")
	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}), "create must be idempotent")

	require.NoError(t, DropTables(ctx, db, &sampleDao{}))
	pgutil.AssertTableNotExists(t, db, "sample_rows")
	require.NoError(t, DropTables(ctx, db, &sampleDao{}), "drop must be idempotent")
}

func TestTruncateTables(t *testing.T) {
	ctx, db := setupDB(t)
	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}))

	_, err := db.NewInsert().Model(&[]sampleDao{{Name: "ethereum"}, {Name: "assethub"}}).Exec(ctx)
	require.NoError(t, err)
	pgutil.AssertRowCount(t, db, "sample_rows", 2)

	require.NoError(t, TruncateTables(ctx, db, &sampleDao{}))
	pgutil.AssertRowCount(t, db, "sample_rows", 0)
	pgutil.AssertTableExists(t, db, "sample_rows")
}

func TestModelIndexes(t *testing.T) {
	ctx, db := setupDB(t)
	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}))

	name, err := IndexName(db, &sampleDao{}, "name")
	require.NoError(t, err)
	assert.Equal(t, "idx_sample_rows_name", name)

	require.NoError(t, CreateModelIndexes(ctx, db, &sampleDao{}, "name", "chain"))
	pgutil.AssertIndexExists(t, db, "idx_sample_rows_name")
	pgutil.AssertIndexExists(t, db, "idx_sample_rows_chain")

	require.NoError(t, DropModelIndexes(ctx, db, &sampleDao{}, "name", "chain"))
}

func TestIndexName_NilModel(t *testing.T) {
	_, err := IndexName(nil, nil, "name")
	require.Error(t, err)
}

func TestRunMigrations_RejectsUnknownCommands(t *testing.T) {
	ctx, db := setupDB(t)
	migrator := migrate.NewMigrator(db, migrate.NewMigrations())

	require.Error(t, RunMigrations(ctx, migrator))
	err := RunMigrations(ctx, migrator, "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
