package ecs

import (
	"fmt"
	"iter"
	"reflect"
)

// Query wraps a View with caching for repeated iteration.
// The matching archetypes are cached until the storage grows a new archetype,
// and the matched rows are snapshotted once per frame by Execute.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int

	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query with archetype-level caching.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
	q.cacheValid = false
}

// Execute rebuilds the row snapshot for this frame.
// Called by the Scheduler before each system runs.
func (q *Query[T]) Execute() {
	if q.storage == nil {
		panic("Query used before Init")
	}

	if n := len(q.storage.archetypes); n != q.lastArchetypeCount {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, archetype := range q.storage.archetypes {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
		q.lastArchetypeCount = n
	}

	q.cachedComponents = q.cachedComponents[:0]
	for _, archetype := range q.cachedArchetypes {
		for item := range q.view.iterArchetype(archetype) {
			q.cachedComponents = append(q.cachedComponents, item)
		}
	}

	q.cacheValid = true
}

// Invalidate forces the next Iter to rebuild the snapshot.
func (q *Query[T]) Invalidate() {
	q.cacheValid = false
}

// Iter returns an iterator over the matched rows.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		q.Execute()
	}

	return func(yield func(T) bool) {
		for _, item := range q.cachedComponents {
			if !yield(item) {
				return
			}
		}
	}
}

// Count returns the number of matched rows.
func (q *Query[T]) Count() int {
	if !q.cacheValid {
		q.Execute()
	}
	return len(q.cachedComponents)
}

// Single returns the only matched row. It fails with ErrNoEntities or
// ErrMultipleEntities when the query does not match exactly one entity.
func (q *Query[T]) Single() (T, error) {
	var zero T
	switch n := q.Count(); {
	case n == 0:
		return zero, fmt.Errorf("%w: %s", ErrNoEntities, reflect.TypeFor[T]())
	case n > 1:
		return zero, fmt.Errorf("%w (%d): %s", ErrMultipleEntities, n, reflect.TypeFor[T]())
	}
	return q.cachedComponents[0], nil
}

// MustSingle is like Single but panics on a mismatch.
func (q *Query[T]) MustSingle() T {
	item, err := q.Single()
	if err != nil {
		panic(err)
	}
	return item
}
