package repo

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voucher-management/internal/domain"
)

func TestIndexInsertKeepsOrder(t *testing.T) {
	x := NewIndex[string]()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		require.NoError(t, x.Insert(id, string(rune('a'+i))))
	}
	assert.Equal(t, []string{"a", "b", "c"}, x.Values())

	err := x.Insert(ids[1], "z")
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Equal(t, 3, x.Len())
}

func TestIndexReplaceAndRemove(t *testing.T) {
	x := NewIndex[int]()
	id := uuid.New()

	_, err := x.Replace(id, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = x.Remove(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	x.Put(id, 1)
	old, err := x.Replace(id, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, old)

	old, err = x.Remove(id)
	require.NoError(t, err)
	assert.Equal(t, 2, old)
	_, ok := x.Get(id)
	assert.False(t, ok)
	assert.Empty(t, x.Values())
}

func TestIndexFilter(t *testing.T) {
	x := NewIndex[int]()
	for i := 0; i < 10; i++ {
		x.Put(uuid.New(), i)
	}
	even := x.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{0, 2, 4, 6, 8}, even)
}

func TestIndexConcurrentWriters(t *testing.T) {
	x := NewIndex[int]()
	shared := uuid.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x.Put(uuid.New(), i)
			x.Put(shared, i)
			_ = x.Values()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 51, x.Len())
	_, ok := x.Get(shared)
	assert.True(t, ok)
}

func TestIndexPutAtRestoresPosition(t *testing.T) {
	x := NewIndex[string]()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		x.Put(id, string(rune('a'+i)))
	}

	pos, ok := x.Pos(ids[1])
	require.True(t, ok)
	assert.Equal(t, 1, pos)
	_, err := x.Remove(ids[1])
	require.NoError(t, err)
	_, ok = x.Pos(ids[1])
	assert.False(t, ok)

	x.PutAt(pos, ids[1], "b")
	assert.Equal(t, []string{"a", "b", "c"}, x.Values())

	x.PutAt(99, ids[0], "A")
	assert.Equal(t, []string{"b", "c", "A"}, x.Values())
	assert.Equal(t, 3, x.Len())
}
