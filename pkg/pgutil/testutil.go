package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/bridge-console/pkg/config"
)

const (
	testImage    = "postgres:15-alpine"
	testDatabase = "console_test"
	testUser     = "console"
	testPassword = "console"

	connectAttempts = 8
)

// SetupTestDB starts a throwaway postgres container and connects to it.
// The test is skipped when no docker daemon is reachable. The container is
// terminated through t.Cleanup; the returned func may be called earlier.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	skipWithoutDocker(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "start postgres container")

	terminate := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		t.Fatalf("postgres container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		t.Fatalf("postgres container port: %v", err)
	}

	db, err := connectWithRetry(ctx, &config.DatabaseConfig{
		Enabled:  true,
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
		SSLMode:  "disable",
	})
	if err != nil {
		terminate()
		t.Fatalf("connect to test database: %v", err)
	}

	var once bool
	cleanup := func() {
		if once {
			return
		}
		once = true
		_ = db.Close()
		terminate()
	}
	t.Cleanup(cleanup)

	return db, cleanup
}

// connectWithRetry retries with doubling backoff starting at 100ms
func connectWithRetry(ctx context.Context, cfg *config.DatabaseConfig) (*bun.DB, error) {
	var lastErr error
	backoff := 100 * time.Millisecond
	for range connectAttempts {
		db, err := ConnectDB(ctx, cfg, nil)
		if err == nil {
			return db, nil
		}
		lastErr = err
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, lastErr
}

func skipWithoutDocker(t *testing.T) {
	t.Helper()

	for _, sock := range []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	} {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{Timeout: time.Second}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping postgres-backed test")
}

func tableExists(t *testing.T, db *bun.DB, table string) bool {
	t.Helper()
	var exists bool
	err := db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?)", table).
		Scan(context.Background(), &exists)
	require.NoError(t, err, "look up table %s", table)
	return exists
}

// AssertTableExists fails the test when table is missing
func AssertTableExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	assert.True(t, tableExists(t, db, table), "table %s does not exist", table)
}

// AssertTableNotExists fails the test when table is present
func AssertTableNotExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	assert.False(t, tableExists(t, db, table), "table %s should not exist", table)
}

// AssertIndexExists fails the test when index is missing
func AssertIndexExists(t *testing.T, db *bun.DB, index string) {
	t.Helper()
	var exists bool
	err := db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)", index).
		Scan(context.Background(), &exists)
	require.NoError(t, err, "look up index %s", index)
	assert.True(t, exists, "index %s does not exist", index)
}

// AssertRowCount fails the test when table does not hold expected rows
func AssertRowCount(t *testing.T, db *bun.DB, table string, expected int) {
	t.Helper()
	count, err := db.NewSelect().TableExpr("?", bun.Ident(table)).Count(context.Background())
	require.NoError(t, err, "count rows of %s", table)
	assert.Equal(t, expected, count, "rows in %s", table)
}
