package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"webcall-server/internal/clients/redis"
	"webcall-server/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory KeyValue with an optional injected failure.
type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	val, ok := f.data[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return val, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(newFakeKV(), observability.NewNopLogger()),
	}
}

func TestStore_ReceptionistStatus(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			active, err := s.GetReceptionistStatus(ctx)
			require.NoError(t, err)
			assert.True(t, active, "receptionist defaults to active")

			require.NoError(t, s.SetReceptionistStatus(ctx, false))
			active, err = s.GetReceptionistStatus(ctx)
			require.NoError(t, err)
			assert.False(t, active)
		})
	}
}

func TestStore_ActiveAgent(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.GetActiveAgent(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			want := ActiveAgent{AgentID: "agent_X", Label: "Medical", UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
			require.NoError(t, s.SetActiveAgent(ctx, want))

			got, err := s.GetActiveAgent(ctx)
			require.NoError(t, err)
			assert.Equal(t, want.AgentID, got.AgentID)
			assert.Equal(t, want.Label, got.Label)
			assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
		})
	}
}

func TestRedisStore_BackendFailure(t *testing.T) {
	kv := newFakeKV()
	kv.err = errors.New("connection refused")
	s := NewRedisStore(kv, observability.NewNopLogger())
	ctx := context.Background()

	_, err := s.GetReceptionistStatus(ctx)
	assert.Error(t, err)
	_, err = s.GetActiveAgent(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, s.SetActiveAgent(ctx, ActiveAgent{AgentID: "agent_X"}))
}

func TestRedisStore_MalformedStatusDefaultsToActive(t *testing.T) {
	kv := newFakeKV()
	kv.data[receptionistStatusKey] = "maybe"
	s := NewRedisStore(kv, observability.NewNopLogger())

	active, err := s.GetReceptionistStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, active)
}
