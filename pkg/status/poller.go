package status

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-console/internal/metrics"
)

// ErrNoSnapshot is returned before the first successful refresh
var ErrNoSnapshot = errors.New("bridge status not available yet")

// Snapshot is a status report with the time it was fetched
type Snapshot struct {
	ID        int64        `json:"id,omitempty"`
	Status    BridgeStatus `json:"status"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// SnapshotStore persists fetched snapshots
//
//go:generate mockery --name SnapshotStore --output mocks --outpkg mocks --filename mock_snapshot_store.go --with-expecter
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]*Snapshot, error)
}

// Service exposes the bridge status to the HTTP layer
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Latest(ctx context.Context) (*Snapshot, error)
	Refresh(ctx context.Context) (*Snapshot, error)
	History(ctx context.Context, limit int) ([]*Snapshot, error)
}

// Poller refreshes the status on an interval and on demand, keeping the
// latest snapshot in memory.
type Poller struct {
	source   Source
	store    SnapshotStore
	native   NativeToken
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu     sync.RWMutex
	latest *Snapshot

	refreshMu sync.Mutex

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewPoller creates a poller. A non-positive interval disables background
// polling; Refresh still works.
func NewPoller(
	source Source,
	store SnapshotStore,
	native NativeToken,
	interval, timeout time.Duration,
	logger *zap.Logger,
) *Poller {
	if native.Symbol == "" {
		native = DefaultNativeToken
	}
	return &Poller{
		source:   source,
		store:    store,
		native:   native,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Latest returns the most recent snapshot
func (p *Poller) Latest(_ context.Context) (*Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return nil, ErrNoSnapshot
	}
	snap := *p.latest
	return &snap, nil
}

// Refresh fetches a new report now. Concurrent calls are serialized.
func (p *Poller) Refresh(ctx context.Context) (*Snapshot, error) {
	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	st, err := p.source.Fetch(ctx)
	if err != nil {
		metrics.StatusFetches.WithLabelValues("error").Inc()
		return nil, err
	}
	st.Summary = Summarize(st.StatusInfo)

	snap := &Snapshot{Status: *st, FetchedAt: p.now().UTC()}
	if err := p.store.SaveSnapshot(ctx, snap); err != nil {
		p.logger.Warn("Failed to persist status snapshot", zap.Error(err))
		metrics.ErrorsTotal.WithLabelValues("status", "persist").Inc()
	}

	p.mu.Lock()
	p.latest = snap
	p.mu.Unlock()

	p.export(snap)
	metrics.StatusFetches.WithLabelValues("ok").Inc()

	copied := *snap
	return &copied, nil
}

// History returns up to limit persisted snapshots, newest first
func (p *Poller) History(ctx context.Context, limit int) ([]*Snapshot, error) {
	return p.store.ListSnapshots(ctx, limit)
}

// Start refreshes once and then polls in the background until Stop
func (p *Poller) Start(ctx context.Context) {
	if _, err := p.Refresh(ctx); err != nil {
		p.logger.Warn("Initial status refresh failed (will retry periodically)", zap.Error(err))
	}
	if p.interval <= 0 {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("Started status polling", zap.Duration("interval", p.interval))

		for {
			select {
			case <-ticker.C:
				if _, err := p.Refresh(ctx); err != nil {
					p.logger.Error("Status refresh failed", zap.Error(err))
				}
			case <-ctx.Done():
				return
			case <-p.stopCh:
				p.logger.Info("Stopping status polling")
				return
			}
		}
	}()
}

// Stop stops background polling
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *Poller) export(snap *Snapshot) {
	st := &snap.Status

	metrics.OperatingMode.WithLabelValues("to_polkadot").Set(modeValue(st.Summary.ToPolkadotOperatingMode))
	metrics.OperatingMode.WithLabelValues("to_ethereum").Set(modeValue(st.Summary.ToEthereumOperatingMode))
	metrics.LatencySeconds.WithLabelValues("to_polkadot").Set(float64(st.StatusInfo.ToPolkadot.LatencySeconds))
	metrics.LatencySeconds.WithLabelValues("to_ethereum").Set(float64(st.StatusInfo.ToEthereum.LatencySeconds))
	metrics.BlockLatency.WithLabelValues("to_polkadot").Set(float64(st.StatusInfo.ToPolkadot.BlockLatency))
	metrics.BlockLatency.WithLabelValues("to_ethereum").Set(float64(st.StatusInfo.ToEthereum.BlockLatency))

	for _, ci := range st.ChannelStatusInfos {
		metrics.ChannelBacklog.WithLabelValues(ci.Name, "to_ethereum").Set(float64(ci.Status.ToEthereum.Backlog()))
		metrics.ChannelBacklog.WithLabelValues(ci.Name, "to_polkadot").Set(float64(ci.Status.ToPolkadot.Backlog()))
	}
	for _, acc := range append(append([]AccountInfo(nil), st.Relayers...), st.Accounts...) {
		metrics.AccountBalance.WithLabelValues(acc.Name, string(acc.Type)).Set(balanceFloat(acc, p.native))
	}
	metrics.LastStatusUpdate.Set(float64(snap.FetchedAt.Unix()))
}

func modeValue(m Mode) float64 {
	if m == ModeNormal {
		return 1
	}
	return 0
}
