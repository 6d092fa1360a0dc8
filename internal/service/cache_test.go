//go:build !integration

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpdst/dst-service/internal/domain/model"
)

func cachedDrug(id string) *model.DrugReference {
	return &model.DrugReference{DrugID: id, Name: id, MolecularWeight: 100}
}

func TestTTLCache_GetSet(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	t.Run("miss on empty cache", func(t *testing.T) {
		_, ok := c.Get("inh")
		assert.False(t, ok)
	})

	t.Run("hit after set", func(t *testing.T) {
		c.Set("inh", cachedDrug("inh"))
		drug, ok := c.Get("inh")
		require.True(t, ok)
		assert.Equal(t, "inh", drug.DrugID)
	})

	t.Run("set updates an existing entry", func(t *testing.T) {
		updated := cachedDrug("inh")
		updated.Name = "Isoniazid (INH)"
		c.Set("inh", updated)

		drug, ok := c.Get("inh")
		require.True(t, ok)
		assert.Equal(t, "Isoniazid (INH)", drug.Name)
	})
}

func TestTTLCache_Expiration(t *testing.T) {
	c := newTTLCache(10, 20*time.Millisecond)
	defer c.Stop()

	c.Set("inh", cachedDrug("inh"))
	_, ok := c.Get("inh")
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)

	_, ok = c.Get("inh")
	assert.False(t, ok)
}

func TestTTLCache_Eviction(t *testing.T) {
	c := newTTLCache(3, time.Minute)
	defer c.Stop()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("drug-%d", i)
		c.Set(id, cachedDrug(id))
	}

	// Touch drug-0 so drug-1 becomes the least recently used.
	_, ok := c.Get("drug-0")
	require.True(t, ok)

	c.Set("drug-3", cachedDrug("drug-3"))

	_, ok = c.Get("drug-1")
	assert.False(t, ok)
	_, ok = c.Get("drug-0")
	assert.True(t, ok)
	_, ok = c.Get("drug-3")
	assert.True(t, ok)

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Evictions)
	assert.Equal(t, 3, m.Size)
	assert.Equal(t, 3, m.Capacity)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("inh", cachedDrug("inh"))
	c.Invalidate("inh")

	_, ok := c.Get("inh")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("rif")
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("inh", cachedDrug("inh"))
	c.Set("rif", cachedDrug("rif"))
	c.Clear()

	_, ok := c.Get("inh")
	assert.False(t, ok)

	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("inh", cachedDrug("inh"))
	_, _ = c.Get("inh")
	_, _ = c.Get("inh")
	_, _ = c.Get("missing")

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}
