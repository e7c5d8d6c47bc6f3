package property

import (
	"log/slog"
	"reflect"

	"github.com/solstice-io/solstice/log"
)

// Resolver answers property lookups against an immutable [Store].
// Each call is a fresh, independent resolution with no shared state, so
// repeated lookups without store mutation return identical results.
type Resolver struct {
	store      Store
	converters Converters
}

// Option applies a configuration option to a Resolver under construction.
type Option func(Resolver) Resolver

// WithEnviron seeds the store with a list of "KEY=VALUE" pairs, typically
// os.Environ(). Entries supplied with [WithEntries] override it.
func WithEnviron(environ []string) Option {
	return func(r Resolver) Resolver {
		for key, value := range MakeStore(environ) {
			if _, ok := r.store[key]; !ok {
				r.store[key] = value
			}
		}

		return r
	}
}

// WithEntries overlays explicit entries in order; last write wins.
func WithEntries(entries ...Entry) Option {
	return func(r Resolver) Resolver {
		for _, entry := range entries {
			r.store[entry.Key] = entry.Value
		}

		return r
	}
}

// WithConverters replaces the converter table.
func WithConverters(converters Converters) Option {
	return func(r Resolver) Resolver {
		r.converters = converters

		return r
	}
}

// Make creates a Resolver. The store is populated once here: environment
// pairs first, explicit entries overlaid, per option order. When debug
// logging is enabled, the merged store is dumped sorted by key.
func Make(opts ...Option) Resolver {
	r := Resolver{
		store:      make(Store),
		converters: MakeConverters(),
	}

	for _, opt := range opts {
		r = opt(r)
	}

	if log.Default().Level() <= log.LevelDebug {
		for _, key := range r.store.Keys() {
			log.Debug(
				"property",
				slog.String("key", key),
				slog.String("value", r.store[key]),
			)
		}
	}

	return r
}

// Converters returns the resolver's converter table, for registering
// additional converters before first use.
func (r Resolver) Converters() Converters { return r.converters }

// Store returns the resolver's backing store. The store must not be
// mutated once lookups have begun.
func (r Resolver) Store() Store { return r.store }

// Contains reports whether key is present in the store, without any
// placeholder interpretation.
func (r Resolver) Contains(key string) bool {
	_, ok := r.store[key]

	return ok
}

// Get resolves key to a string value.
//
// A key of the form "${k:default}" resolves k with the given default; a
// key of the form "${k}" requires k to resolve. A plain key is looked up
// directly: a stored value that is itself a placeholder expression is
// transparently expanded one more level. The second result is false when
// the key has no resolvable value.
func (r Resolver) Get(key string) (string, bool, error) {
	return r.get(key, make(visited))
}

// GetDefault resolves key per [Resolver.Get] and falls back to def when
// the key has no resolvable value. The default may itself be a
// placeholder expression, expanded once.
func (r Resolver) GetDefault(key, def string) (string, error) {
	value, ok, err := r.get(key, make(visited))
	if err != nil {
		return "", err
	}

	if !ok {
		return r.parseValue(def, make(visited))
	}

	return value, nil
}

// Require resolves key per [Resolver.Get] and fails with
// [ErrMissingProperty] when the key has no resolvable value.
func (r Resolver) Require(key string) (string, error) {
	value, ok, err := r.get(key, make(visited))
	if err != nil {
		return "", err
	}

	if !ok {
		return "", ErrMissingProperty.With(slog.String("key", key))
	}

	return value, nil
}

// As resolves key per [Resolver.Get] and converts the result to T.
func As[T any](r Resolver, key string) (T, bool, error) {
	var zero T

	value, ok, err := r.Get(key)
	if err != nil || !ok {
		return zero, ok, err
	}

	return convertAs[T](r, value)
}

// AsDefault resolves key per [Resolver.Get] and returns def when the key
// has no resolvable value; otherwise the result is converted to T.
func AsDefault[T any](r Resolver, key string, def T) (T, error) {
	value, ok, err := r.Get(key)
	if err != nil {
		var zero T

		return zero, err
	}

	if !ok {
		return def, nil
	}

	converted, _, err := convertAs[T](r, value)

	return converted, err
}

// RequireAs resolves key per [Resolver.Require] and converts the result
// to T.
func RequireAs[T any](r Resolver, key string) (T, error) {
	value, err := r.Require(key)
	if err != nil {
		var zero T

		return zero, err
	}

	converted, _, err := convertAs[T](r, value)

	return converted, err
}

func convertAs[T any](r Resolver, value string) (T, bool, error) {
	parsed, err := r.converters.convert(reflect.TypeFor[T](), value)
	if err != nil {
		var zero T

		return zero, true, err
	}

	return parsed.(T), true, nil
}

// visited tracks the keys already entered by one top-level resolution.
// The original design recursed with no bound; a cyclic configuration now
// fails with [ErrCyclicReference] instead of overflowing the stack.
type visited map[string]struct{}

// get implements the resolution rules shared by every public lookup.
func (r Resolver) get(key string, seen visited) (string, bool, error) {
	expr, ok := ParseExpr(key)
	if ok {
		if expr.HasDefault {
			value, err := r.getDefault(expr.Key, expr.Default, seen)

			return value, err == nil, err
		}

		value, err := r.require(expr.Key, seen)

		return value, err == nil, err
	}

	value, ok := r.store[key]
	if !ok {
		return "", false, nil
	}

	// A stored value may itself be a placeholder; expand one level.
	parsed, err := r.parseValue(value, seen)

	return parsed, err == nil, err
}

// parseValue expands value when it is a placeholder expression and
// returns it verbatim otherwise.
func (r Resolver) parseValue(value string, seen visited) (string, error) {
	expr, ok := ParseExpr(value)
	if !ok {
		return value, nil
	}

	if expr.HasDefault {
		return r.getDefault(expr.Key, expr.Default, seen)
	}

	return r.require(expr.Key, seen)
}

// getDefault resolves key, falling back to expanding def when key has no
// resolvable value.
func (r Resolver) getDefault(key, def string, seen visited) (string, error) {
	value, ok, err := r.resolveKey(key, seen)
	if err != nil {
		return "", err
	}

	if !ok {
		return r.parseValue(def, seen)
	}

	return value, nil
}

// require resolves key and fails with [ErrMissingProperty] when it has no
// resolvable value.
func (r Resolver) require(key string, seen visited) (string, error) {
	value, ok, err := r.resolveKey(key, seen)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", ErrMissingProperty.With(slog.String("key", key))
	}

	return value, nil
}

// resolveKey guards recursive entry into a bare key before delegating to
// the shared resolution rules.
func (r Resolver) resolveKey(key string, seen visited) (string, bool, error) {
	if _, ok := seen[key]; ok {
		return "", false, ErrCyclicReference.
			With(slog.String("key", key))
	}

	seen[key] = struct{}{}

	return r.get(key, seen)
}
