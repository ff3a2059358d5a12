package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
)

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var store driven.ConfigStore = NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

func TestNewConfigStoreWith_CopiesSeed(t *testing.T) {
	seed := map[string]any{"cutter.suffix": "x"}
	store := NewConfigStoreWith(seed)
	seed["cutter.suffix"] = "changed"

	assert.Equal(t, "x", store.GetString("cutter.suffix"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("s", "hello"))
	require.NoError(t, store.Set("n", 7))
	require.NoError(t, store.Set("b", true))
	require.NoError(t, store.Set("bs", "true"))
	require.NoError(t, store.Set("bad", "nope"))

	assert.Equal(t, "hello", store.GetString("s"))
	assert.Equal(t, "", store.GetString("n"))
	assert.True(t, store.GetBool("b"))
	assert.True(t, store.GetBool("bs"))
	assert.False(t, store.GetBool("bad"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("key", i)
		}()
		go func() {
			defer wg.Done()
			store.GetString("key")
		}()
	}
	wg.Wait()

	_, ok := store.Get("key")
	assert.True(t, ok)
}
