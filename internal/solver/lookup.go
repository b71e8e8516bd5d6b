package solver

import "context"

// Lookup is the precomputed solution oracle. Find returns the move-string
// that takes the state with the given serialization key to solved.
// ok is false when the key is unknown; err is reserved for failures of the
// oracle itself.
type Lookup interface {
	Find(ctx context.Context, key string) (moves string, ok bool, err error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, key string) (string, bool, error)

// Find calls f.
func (f LookupFunc) Find(ctx context.Context, key string) (string, bool, error) {
	return f(ctx, key)
}

// MapLookup is an in-memory Lookup keyed by state serialization.
type MapLookup map[string]string

// Find implements Lookup.
func (m MapLookup) Find(_ context.Context, key string) (string, bool, error) {
	moves, ok := m[key]
	return moves, ok, nil
}
