package cache

import (
	"context"
	"testing"
	"time"

	"jobmatch/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	r := NewRedis(context.Background(), config.RedisConfig{
		Host:     s.Host(),
		Port:     s.Port(),
		CacheTTL: ttl,
	}, zaptest.NewLogger(t))
	t.Cleanup(func() { _ = r.Close() })
	return r, s
}

func TestRedis_RoundTrip(t *testing.T) {
	r, s := newTestRedis(t, 90*time.Second)
	ctx := context.Background()

	require.NoError(t, r.Ping(ctx))
	assert.True(t, r.Enabled())
	require.NoError(t, r.SetJSON(ctx, "k", payload{Name: "a", Count: 2}, 0))
	assert.Equal(t, 90*time.Second, s.TTL("k"))

	var got payload
	ok, err := r.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "a", Count: 2}, got)
}

func TestRedis_MissAndExpiry(t *testing.T) {
	r, s := newTestRedis(t, 0)
	ctx := context.Background()

	var got payload
	ok, err := r.GetJSON(ctx, "absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.SetJSON(ctx, "k", payload{Name: "b"}, 5*time.Second))
	assert.Equal(t, 5*time.Second, s.TTL("k"))
	s.FastForward(6 * time.Second)

	ok, err = r.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_DefaultTTL(t *testing.T) {
	r, s := newTestRedis(t, 0)
	require.NoError(t, r.SetJSON(context.Background(), "k", payload{}, 0))
	assert.Equal(t, DefaultTTL, s.TTL("k"))
}

func TestRedis_UnreachableBecomesNoop(t *testing.T) {
	s := miniredis.RunT(t)
	addrHost, addrPort := s.Host(), s.Port()
	s.Close()

	r := NewRedis(context.Background(), config.RedisConfig{Host: addrHost, Port: addrPort}, zaptest.NewLogger(t))
	ctx := context.Background()

	assert.False(t, r.Enabled())
	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	assert.NoError(t, r.SetJSON(ctx, "k", payload{}, time.Second))

	var got payload
	ok, err := r.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, r.Close())
}

func TestRedis_NilIsDisabled(t *testing.T) {
	var r *Redis
	assert.False(t, r.Enabled())
	assert.ErrorIs(t, r.Ping(context.Background()), ErrUnavailable)
}
