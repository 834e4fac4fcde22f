package status_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-console/pkg/status"
	"github.com/chainsafe/bridge-console/pkg/status/mocks"
)

func haltedReport() *status.BridgeStatus {
	return &status.BridgeStatus{
		StatusInfo: status.Info{
			ToPolkadot: status.ToPolkadotInfo{OperatingMode: status.ToPolkadotModes{
				Beacon: status.ModeNormal, Inbound: status.ModeNormal, Outbound: status.ModeNormal,
			}},
			ToEthereum: status.ToEthereumInfo{OperatingMode: status.ToEthereumModes{Outbound: status.ModeHalted}},
		},
		// a stale summary from the source must not be trusted
		Summary: status.Summary{
			OverallStatus:           status.ModeNormal,
			ToPolkadotOperatingMode: status.ModeNormal,
			ToEthereumOperatingMode: status.ModeNormal,
		},
	}
}

func TestPoller_LatestBeforeRefresh(t *testing.T) {
	p := status.NewPoller(mocks.NewSource(t), mocks.NewSnapshotStore(t), status.DefaultNativeToken, 0, time.Second, zap.NewNop())

	_, err := p.Latest(context.Background())
	assert.ErrorIs(t, err, status.ErrNoSnapshot)
}

func TestPoller_RefreshRecomputesSummary(t *testing.T) {
	src := mocks.NewSource(t)
	store := mocks.NewSnapshotStore(t)
	src.EXPECT().Fetch(mock.Anything).Return(haltedReport(), nil).Once()
	store.EXPECT().SaveSnapshot(mock.Anything, mock.AnythingOfType("*status.Snapshot")).Return(nil).Once()

	p := status.NewPoller(src, store, status.DefaultNativeToken, 0, time.Second, zap.NewNop())

	snap, err := p.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.ModeHalted, snap.Status.Summary.OverallStatus)
	assert.Equal(t, status.ModeNormal, snap.Status.Summary.ToPolkadotOperatingMode)
	assert.Equal(t, status.ModeHalted, snap.Status.Summary.ToEthereumOperatingMode)
	assert.False(t, snap.FetchedAt.IsZero())

	latest, err := p.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.Status.Summary, latest.Status.Summary)
}

func TestPoller_RefreshPersistFailureIsNotFatal(t *testing.T) {
	src := mocks.NewSource(t)
	store := mocks.NewSnapshotStore(t)
	src.EXPECT().Fetch(mock.Anything).Return(haltedReport(), nil).Once()
	store.EXPECT().SaveSnapshot(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	p := status.NewPoller(src, store, status.DefaultNativeToken, 0, time.Second, zap.NewNop())

	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	_, err = p.Latest(context.Background())
	require.NoError(t, err)
}

func TestPoller_RefreshErrorKeepsPreviousSnapshot(t *testing.T) {
	src := mocks.NewSource(t)
	store := mocks.NewSnapshotStore(t)
	src.EXPECT().Fetch(mock.Anything).Return(haltedReport(), nil).Once()
	src.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("timeout")).Once()
	store.EXPECT().SaveSnapshot(mock.Anything, mock.Anything).Return(nil).Once()

	p := status.NewPoller(src, store, status.DefaultNativeToken, 0, time.Second, zap.NewNop())

	first, err := p.Refresh(context.Background())
	require.NoError(t, err)

	_, err = p.Refresh(context.Background())
	require.Error(t, err)

	latest, err := p.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.FetchedAt, latest.FetchedAt)
}

func TestPoller_History(t *testing.T) {
	store := mocks.NewSnapshotStore(t)
	want := []*status.Snapshot{{ID: 2}, {ID: 1}}
	store.EXPECT().ListSnapshots(mock.Anything, 10).Return(want, nil).Once()

	p := status.NewPoller(mocks.NewSource(t), store, status.DefaultNativeToken, 0, time.Second, zap.NewNop())

	got, err := p.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPoller_StartStop(t *testing.T) {
	src := mocks.NewSource(t)
	store := mocks.NewSnapshotStore(t)

	var fetches atomic.Int32
	src.EXPECT().Fetch(mock.Anything).RunAndReturn(func(context.Context) (*status.BridgeStatus, error) {
		fetches.Add(1)
		return haltedReport(), nil
	})
	store.EXPECT().SaveSnapshot(mock.Anything, mock.Anything).Return(nil)

	p := status.NewPoller(src, store, status.DefaultNativeToken, 10*time.Millisecond, time.Second, zap.NewNop())
	p.Start(context.Background())

	assert.Eventually(t, func() bool { return fetches.Load() >= 3 }, time.Second, 5*time.Millisecond)

	p.Stop()
	p.Stop()

	stopped := fetches.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, fetches.Load())
}
