package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddRejectsDuplicateAndKeepsOriginal(t *testing.T) {
	r := New[string]()

	require.NoError(t, r.Add("web", "first"))
	err := r.Add("web", "second")

	assert.ErrorIs(t, err, ErrDuplicate)
	v, ok := r.Get("web")
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RemoveMissing(t *testing.T) {
	r := New[int]()

	_, err := r.Remove("ghost")

	assert.ErrorIs(t, err, ErrMissing)
}

func TestRegistry_RemoveReturnsValueAndKeepsOrder(t *testing.T) {
	r := New[int]()
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.Add(name, i))
	}

	v, err := r.Remove("b")

	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"a", "c"}, r.Names())
	assert.False(t, r.Has("b"))
}

func TestRegistry_GetMissingReturnsZero(t *testing.T) {
	r := New[*struct{}]()

	v, ok := r.Get("nope")

	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	r := New[int]()
	require.NoError(t, r.Add("a", 1))

	names := r.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Names())
}

func TestRegistry_EachAllowsMutationDuringIteration(t *testing.T) {
	r := New[int]()
	require.NoError(t, r.Add("a", 1))
	require.NoError(t, r.Add("b", 2))

	var visited []string
	r.Each(func(name string, _ int) {
		visited = append(visited, name)
		_, _ = r.Remove(name)
	})

	assert.Equal(t, []string{"a", "b"}, visited)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	r := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Add(fmt.Sprintf("n%d", i%10), i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
}
