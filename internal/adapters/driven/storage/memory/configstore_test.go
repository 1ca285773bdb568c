package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api.base_url", "http://shop.test"))

	val, ok := store.Get("api.base_url")
	assert.True(t, ok)
	assert.Equal(t, "http://shop.test", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("s", "text"))
	require.NoError(t, store.Set("i", 30))
	require.NoError(t, store.Set("i64", int64(12)))
	require.NoError(t, store.Set("f", 2.5))
	require.NoError(t, store.Set("b", true))

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 30, store.GetInt("i"))
	assert.Equal(t, 12, store.GetInt("i64"))
	assert.Equal(t, 2, store.GetInt("f"))
	assert.InDelta(t, 2.5, store.GetFloat("f"), 0.0001)
	assert.InDelta(t, 30.0, store.GetFloat("i"), 0.0001)
	assert.Equal(t, 0.0, store.GetFloat("s"))
	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_KeysSorted(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("routes.login", "/login"))
	require.NoError(t, store.Set("api.timeout_seconds", 30))
	require.NoError(t, store.Set("api.base_url", "http://x"))

	assert.Equal(t, []string{"api.base_url", "api.timeout_seconds", "routes.login"}, store.Keys())
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("counter", n)
			_ = store.GetInt("counter")
			_ = store.Keys()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []string{"counter"}, store.Keys())
}
