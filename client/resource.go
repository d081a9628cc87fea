package client

import (
	"context"
	"sync"
)

// FetchFunc produces a record and the backend's fallback warning, if any.
type FetchFunc[T any] func(ctx context.Context) (T, string, error)

// Resource tracks the latest result of a refetchable request: data, warning,
// error and loading state. Refetch re-issues the same request on demand. A
// generation counter guarantees a stale in-flight response never overwrites
// state written by a newer request.
type Resource[T any] struct {
	fetch FetchFunc[T]

	mu      sync.Mutex
	gen     uint64
	data    T
	warning string
	err     error
	loading bool
	loaded  bool
}

// Snapshot is a point-in-time view of a resource's state.
type Snapshot[T any] struct {
	Data    T
	Warning string
	Err     error
	Loading bool
	Loaded  bool
}

// NewResource wraps a fetch function. No request is issued until the first
// Refetch.
func NewResource[T any](fetch FetchFunc[T]) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Refetch issues the request and returns its result. The resource's stored
// state is only updated when no newer Refetch started in the meantime.
func (r *Resource[T]) Refetch(ctx context.Context) (T, error) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.loading = true
	r.mu.Unlock()

	data, warning, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		// A newer request superseded this one; its result wins.
		return data, err
	}

	r.loading = false
	r.loaded = true
	if err != nil {
		var zero T
		r.data = zero
		r.warning = ""
		r.err = err
	} else {
		r.data = data
		r.warning = warning
		r.err = nil
	}

	return data, err
}

// State returns the current snapshot.
func (r *Resource[T]) State() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{
		Data:    r.data,
		Warning: r.warning,
		Err:     r.err,
		Loading: r.loading,
		Loaded:  r.loaded,
	}
}
