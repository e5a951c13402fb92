package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLen(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Save("a", "one", []byte("Constant 1 ")))
	require.NoError(t, s.Save("a", "two", []byte("Constant 2 ")))
	require.NoError(t, s.Save("b", "one", []byte("Constant 3 ")))

	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.DeleteNamespace("a"))
	assert.Equal(t, 1, s.Len())
}

// Save copies the caller's slice and Load returns a copy, so callers
// cannot mutate stored data.
func TestMemoryStoreDataIsolation(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	data := []byte("Constant 1 ")
	require.NoError(t, s.Save("ns", "e", data))

	data[0] = 'X'

	got, err := s.Load("ns", "e")
	require.NoError(t, err)
	assert.Equal(t, []byte("Constant 1 "), got)

	got[0] = 'Y'

	again, err := s.Load("ns", "e")
	require.NoError(t, err)
	assert.Equal(t, []byte("Constant 1 "), again)
}
