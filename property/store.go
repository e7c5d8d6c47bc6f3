package property

import (
	"maps"
	"slices"
	"strings"
)

// Entry is one explicit key-value pair supplied to [MakeStore].
type Entry struct {
	Key   string
	Value string
}

// Store is a flat key-to-string mapping built once at construction.
// Reads from multiple goroutines are safe only while nothing writes;
// the bootstrap usage this package targets is single-threaded.
type Store map[string]string

// MakeStore builds a Store by seeding the mapping with environ, a list of
// "KEY=VALUE" pairs as produced by os.Environ, and overlaying the explicit
// entries in order. An explicit key always overrides an environment key of
// the same name; among explicit entries, last write wins. Keys and values
// are not validated; empty values are legal.
func MakeStore(environ []string, explicit ...Entry) Store {
	store := make(Store, len(environ)+len(explicit))

	for _, pair := range environ {
		key, value, ok := strings.Cut(pair, "=")
		if ok {
			store[key] = value
		}
	}

	for _, entry := range explicit {
		store[entry.Key] = entry.Value
	}

	return store
}

// Keys returns every key in the store, sorted.
func (s Store) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}
