package transfer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistry_OpenGetClose(t *testing.T) {
	r := NewRegistry(time.Minute, zap.NewNop())
	c := testCatalog(t)

	s, err := r.Open(c)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	r.Close(s.ID())
	_, err = r.Get(s.ID())
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestRegistry_SweepExpiresIdleSessions(t *testing.T) {
	r := NewRegistry(10*time.Minute, zap.NewNop())
	c := testCatalog(t)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	idle, err := r.Open(c)
	require.NoError(t, err)
	busy, err := r.Open(c)
	require.NoError(t, err)
	fresh, err := r.Open(c)
	require.NoError(t, err)

	_, err = busy.BeginSubmit(busy.View().Values)
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)
	_, err = r.Get(fresh.ID())
	require.NoError(t, err)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 2, r.Len())

	_, err = r.Get(idle.ID())
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	_, err = r.Get(busy.ID())
	assert.NoError(t, err)
}

func TestRegistry_NoExpiry(t *testing.T) {
	r := NewRegistry(0, zap.NewNop())
	_, err := r.Open(testCatalog(t))
	require.NoError(t, err)

	r.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	assert.Zero(t, r.Sweep())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_StartStop(t *testing.T) {
	r := NewRegistry(time.Millisecond, zap.NewNop())
	_, err := r.Open(testCatalog(t))
	require.NoError(t, err)

	r.StartSweeping(5 * time.Millisecond)
	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	r.Stop()
	r.Stop()
}
