// Package controller implements the per-object-family controllers that
// populate and keep in sync the flattened Go object model defined by
// package objects, grounded on aiovantage's _controllers package.
package controller

import (
	"context"
	"iter"
	"sort"

	"github.com/loopj/aiovantage-sub001/objects"
)

// QuerySet is a lazily-populated, filterable view over a controller's
// objects, grounded on _controllers/query.py's QuerySet. Unlike the
// original's async-iterator protocol, Go expresses "populate on first use"
// with an explicit populate closure each accessor calls before reading.
type QuerySet[T objects.Object] struct {
	data     *map[objects.VID]T
	populate func(ctx context.Context) error
	filters  []func(T) bool
}

// NewQuerySet wraps data (read through a pointer so a Base[T] controller's
// later re-initialization is visible) with populate, the closure that
// lazily triggers Initialize the first time an async accessor is used.
func NewQuerySet[T objects.Object](data *map[objects.VID]T, populate func(ctx context.Context) error) QuerySet[T] {
	return QuerySet[T]{data: data, populate: populate}
}

// Filter returns a new QuerySet restricted to objects matching predicate,
// composing with any filters already applied.
func (q QuerySet[T]) Filter(predicate func(T) bool) QuerySet[T] {
	filters := make([]func(T) bool, len(q.filters), len(q.filters)+1)
	copy(filters, q.filters)
	filters = append(filters, predicate)
	return QuerySet[T]{data: q.data, populate: q.populate, filters: filters}
}

// FilterFields returns a new QuerySet restricted to objects whose fields
// (read via the accessor functions in fields) all equal the given values.
func (q QuerySet[T]) FilterFields(fields map[string]func(T) any, values map[string]any) QuerySet[T] {
	return q.Filter(func(obj T) bool {
		for key, want := range values {
			accessor, ok := fields[key]
			if !ok {
				return false
			}
			if accessor(obj) != want {
				return false
			}
		}
		return true
	})
}

func (q QuerySet[T]) matches(obj T) bool {
	for _, f := range q.filters {
		if !f(obj) {
			return false
		}
	}
	return true
}

// sortedVIDs returns the keys of data in ascending order, giving All/Iter a
// deterministic traversal order (Go map iteration is randomized).
func sortedVIDs[T objects.Object](data map[objects.VID]T) []objects.VID {
	vids := make([]objects.VID, 0, len(data))
	for vid := range data {
		vids = append(vids, vid)
	}
	sort.Slice(vids, func(i, j int) bool { return vids[i] < vids[j] })
	return vids
}

// Get returns the object with the given VID, without triggering
// population: callers that need a guaranteed-fresh read should use
// AFirst or Iter instead.
func (q QuerySet[T]) Get(vid objects.VID) (T, bool) {
	obj, ok := (*q.data)[vid]
	if !ok || !q.matches(obj) {
		var zero T
		return zero, false
	}
	return obj, true
}

// GetWhere returns the first object matching predicate, without triggering
// population.
func (q QuerySet[T]) GetWhere(predicate func(T) bool) (T, bool) {
	return q.Filter(predicate).First()
}

// First returns the first object in the queryset, without triggering
// population.
func (q QuerySet[T]) First() (T, bool) {
	for _, vid := range sortedVIDs(*q.data) {
		obj := (*q.data)[vid]
		if q.matches(obj) {
			return obj, true
		}
	}
	var zero T
	return zero, false
}

// All returns every object in the queryset, without triggering population.
func (q QuerySet[T]) All() []T {
	var out []T
	for _, vid := range sortedVIDs(*q.data) {
		obj := (*q.data)[vid]
		if q.matches(obj) {
			out = append(out, obj)
		}
	}
	return out
}

// AFirst lazily populates the controller (if not already initialized) then
// returns the first matching object, mirroring query.py's QuerySet.afirst.
func (q QuerySet[T]) AFirst(ctx context.Context) (T, bool, error) {
	if err := q.populate(ctx); err != nil {
		var zero T
		return zero, false, err
	}
	obj, ok := q.First()
	return obj, ok, nil
}

// Iter lazily populates the controller then ranges over every matching
// object, the range-over-func analogue of query.py's QuerySet.__anext__.
func (q QuerySet[T]) Iter(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		if err := q.populate(ctx); err != nil {
			return
		}
		for _, obj := range q.All() {
			if !yield(obj) {
				return
			}
		}
	}
}
