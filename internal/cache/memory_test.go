package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	_, err := mc.Get(ctx, StatsKey)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, mc.Set(ctx, StatsKey, []byte(`{"totalContacts":1}`), time.Minute))
	val, err := mc.Get(ctx, StatsKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"totalContacts":1}`), val)

	require.NoError(t, mc.Delete(ctx, StatsKey))
	_, err = mc.Get(ctx, StatsKey)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(time.Millisecond)

	_, err := mc.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
