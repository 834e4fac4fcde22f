package transfer

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-console/internal/metrics"
	"github.com/chainsafe/bridge-console/pkg/location"
)

// Registry keeps the open form sessions in memory, keyed by uuid
type Registry struct {
	idleTimeout time.Duration
	now         func() time.Time
	logger      *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewRegistry creates a registry that expires sessions idle for longer than
// idleTimeout. A non-positive idleTimeout disables expiry.
func NewRegistry(idleTimeout time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger,
		sessions:    make(map[string]*Session),
		stopCh:      make(chan struct{}),
	}
}

// Open creates a session on the catalog's initial route
func (r *Registry) Open(catalog *location.Catalog) (*Session, error) {
	s, err := NewSession(uuid.NewString(), catalog, r.now())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	return s, nil
}

// Get returns the session with id and marks it as used
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(r.now())
	return s, nil
}

// Close drops the session with id
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops idle sessions and returns how many were removed. Sessions with
// a check in flight are kept.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		idle, inFlight := s.idleSince(now)
		if inFlight || idle < r.idleTimeout {
			continue
		}
		delete(r.sessions, id)
		removed++
	}
	return removed
}

// StartSweeping starts a background goroutine that sweeps idle sessions
func (r *Registry) StartSweeping(interval time.Duration) {
	if interval <= 0 || r.idleTimeout <= 0 {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					open := r.Len()
					metrics.OpenSessions.Set(float64(open))
					r.logger.Debug("Expired idle sessions", zap.Int("count", n), zap.Int("open", open))
				}
			case <-r.stopCh:
				return
			}
		}
	}()
}

// Stop stops the sweeper
func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
