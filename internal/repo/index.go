package repo

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"voucher-management/internal/domain"
)

// Index is a thread-safe id → entity map that remembers insertion order.
type Index[V any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]V
	order []uuid.UUID
}

func NewIndex[V any]() *Index[V] {
	return &Index[V]{items: make(map[uuid.UUID]V)}
}

func (x *Index[V]) Get(id uuid.UUID) (V, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	v, ok := x.items[id]
	return v, ok
}

func (x *Index[V]) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.items)
}

// Values returns a snapshot in insertion order.
func (x *Index[V]) Values() []V {
	return x.Filter(nil)
}

// Filter returns the entities for which keep is true; nil keeps all.
func (x *Index[V]) Filter(keep func(V) bool) []V {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]V, 0, len(x.order))
	for _, id := range x.order {
		v := x.items[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Insert fails with domain.ErrDuplicateKey when id is taken.
func (x *Index[V]) Insert(id uuid.UUID, v V) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.items[id]; ok {
		return domain.ErrDuplicateKey
	}
	x.items[id] = v
	x.order = append(x.order, id)
	return nil
}

// Replace swaps the stored value and returns the previous one.
func (x *Index[V]) Replace(id uuid.UUID, v V) (V, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	old, ok := x.items[id]
	if !ok {
		return old, domain.ErrNotFound
	}
	x.items[id] = v
	return old, nil
}

// Remove deletes id and returns the value it held.
func (x *Index[V]) Remove(id uuid.UUID) (V, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	old, ok := x.items[id]
	if !ok {
		return old, domain.ErrNotFound
	}
	x.drop(id)
	return old, nil
}

// Put stores v unconditionally, last write wins.
func (x *Index[V]) Put(id uuid.UUID, v V) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.items[id]; !ok {
		x.order = append(x.order, id)
	}
	x.items[id] = v
}

// Pos reports where id sits in insertion order.
func (x *Index[V]) Pos(id uuid.UUID) (int, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if _, ok := x.items[id]; !ok {
		return -1, false
	}
	return slices.Index(x.order, id), true
}

// PutAt stores v and moves id to position pos, clamped to the current length.
func (x *Index[V]) PutAt(pos int, id uuid.UUID, v V) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.items[id]; ok {
		x.drop(id)
	}
	pos = max(0, min(pos, len(x.order)))
	x.items[id] = v
	x.order = slices.Insert(x.order, pos, id)
}

// Delete removes id if present.
func (x *Index[V]) Delete(id uuid.UUID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.items[id]; ok {
		x.drop(id)
	}
}

func (x *Index[V]) drop(id uuid.UUID) {
	delete(x.items, id)
	for i, oid := range x.order {
		if oid == id {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}
}
