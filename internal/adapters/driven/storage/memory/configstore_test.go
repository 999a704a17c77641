package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("catalog.location", "original.csv"))
	require.NoError(t, store.Set("catalog.location", "updated.csv"))

	val, ok := store.Get("catalog.location")
	assert.True(t, ok)
	assert.Equal(t, "updated.csv", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")

	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("str", "hello")
	_ = store.Set("int", 42)
	_ = store.Set("int64", int64(9))
	_ = store.Set("int_string", "15")
	_ = store.Set("bool", true)
	_ = store.Set("bool_string", "true")

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Empty(t, store.GetString("int"))
	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 9, store.GetInt("int64"))
	assert.Equal(t, 15, store.GetInt("int_string"))
	assert.Zero(t, store.GetInt("str"))
	assert.True(t, store.GetBool("bool"))
	assert.True(t, store.GetBool("bool_string"))
	assert.False(t, store.GetBool("str"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_SaveAndLoad(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("catalog.top_n", 5)

	require.NoError(t, store.Save())
	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, 2, store.Saves())
	assert.Equal(t, 5, store.GetInt("catalog.top_n"))
}

func TestConfigStore_Path(t *testing.T) {
	assert.Equal(t, ":memory:", NewConfigStore().Path())
}

func TestConfigStore_MultipleInstances(t *testing.T) {
	a := NewConfigStore()
	b := NewConfigStore()

	_ = a.Set("catalog.location", "a.csv")

	assert.Equal(t, "a.csv", a.GetString("catalog.location"))
	assert.Empty(t, b.GetString("catalog.location"))
}

func TestConfigStore_Concurrency_ReadWriteMix(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("catalog.top_n", n)
			_ = store.Save()
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("catalog.top_n")
			_, _ = store.Get("catalog.top_n")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, store.Saves())
	_, ok := store.Get("catalog.top_n")
	assert.True(t, ok)
}
