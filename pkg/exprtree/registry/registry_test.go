package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[string, int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
}

func TestRegisterAndGet(t *testing.T) {
	r := New[string, int]()

	r.Register("one", 1)
	r.Register("two", 2)

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get("two")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	// Non-existent key
	v, ok = r.Get("three")
	assert.False(t, ok)
	assert.Equal(t, 0, v) // zero value
}

func TestRegisterOverwrite(t *testing.T) {
	r := New[string, string]()

	r.Register("key", "old")
	r.Register("key", "new")

	v, ok := r.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestRegisterMany(t *testing.T) {
	r := New[string, int]()

	entries := map[string]int{
		"one":   1,
		"two":   2,
		"three": 3,
	}
	r.RegisterMany(entries)

	assert.Equal(t, 3, r.Len())

	for k, v := range entries {
		got, ok := r.Get(k)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestMustGet(t *testing.T) {
	r := New[string, int]()
	r.Register("key", 42)

	v := r.MustGet("key")
	assert.Equal(t, 42, v)
}

func TestMustGetPanic(t *testing.T) {
	r := New[string, int]()

	assert.PanicsWithValue(t, "registry: key not found", func() {
		r.MustGet("nonexistent")
	})
}

func TestHas(t *testing.T) {
	r := New[string, int]()
	r.Register("key", 42)

	assert.True(t, r.Has("key"))
	assert.False(t, r.Has("nonexistent"))
}

func TestDelete(t *testing.T) {
	r := New[string, int]()
	r.Register("key", 42)

	r.Delete("key")

	assert.False(t, r.Has("key"))
	_, ok := r.Get("key")
	assert.False(t, ok)
}

func TestDeleteNonexistent(t *testing.T) {
	r := New[string, int]()
	r.Register("key", 42)

	// Should not panic
	r.Delete("nonexistent")

	assert.Equal(t, 1, r.Len())
}

func TestKeys(t *testing.T) {
	r := New[string, int]()
	r.Register("one", 1)
	r.Register("two", 2)
	r.Register("three", 3)

	keys := r.Keys()

	assert.Len(t, keys, 3)
	assert.ElementsMatch(t, []string{"one", "two", "three"}, keys)
}

func TestKeysEmpty(t *testing.T) {
	r := New[string, int]()
	assert.Empty(t, r.Keys())
}

func TestLen(t *testing.T) {
	r := New[string, int]()
	assert.Equal(t, 0, r.Len())

	r.Register("one", 1)
	assert.Equal(t, 1, r.Len())

	r.Delete("one")
	assert.Equal(t, 0, r.Len())
}

// A registry shared by decoders on multiple goroutines must not race
// between registration and lookup.
func TestConcurrentRegisterAndGet(t *testing.T) {
	r := New[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("key-%d", i), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			r.Get(fmt.Sprintf("key-%d", i))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 10, r.Len())
	for i := 0; i < 10; i++ {
		v, ok := r.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}
