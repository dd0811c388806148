package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/africamarket/africa-market-api/internal/config"
)

func TestNilCacheIsSafe(t *testing.T) {
	t.Parallel()

	var c *Cache
	ctx := context.Background()

	var out []string
	require.False(t, c.Get(ctx, "products:all", &out))
	require.Empty(t, out)

	// No-ops, must not panic.
	c.Set(ctx, "products:all", []string{"x"}, time.Minute)
	c.Delete(ctx, "products:all")
}

func TestNewWithoutAddressDisablesCache(t *testing.T) {
	t.Parallel()

	require.Nil(t, New(&config.Config{}))
}
