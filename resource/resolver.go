package resource

import (
	"log/slog"

	"github.com/solstice-io/solstice/log"
)

// Resolver scans a single namespace for resources. The zero value is not
// usable; construct one with [Make].
type Resolver struct {
	namespace string
	loader    Loader
}

// Option applies a configuration option to a Resolver.
type Option func(Resolver) Resolver

// WithLoader sets the resource-loading mechanism queried for content
// roots.
func WithLoader(loader Loader) Option {
	return func(r Resolver) Resolver {
		r.loader = loader

		return r
	}
}

// WithSearchPath sets a [PathLoader] over the given search path entries.
func WithSearchPath(entries ...string) Option {
	return WithLoader(MakePathLoader(entries...))
}

// Make creates a Resolver for the given dotted namespace. Without options
// the resolver uses an empty search path and discovers nothing.
func Make(namespace string, opts ...Option) Resolver {
	r := Resolver{
		namespace: namespace,
		loader:    MakePathLoader(),
	}

	for _, opt := range opts {
		r = opt(r)
	}

	return r
}

// Namespace returns the dotted namespace the resolver scans.
func (r Resolver) Namespace() string { return r.namespace }

// Scan resolves every content root exposing the resolver's namespace,
// walks each, and applies project to every discovered resource. Resources
// for which project reports false are dropped; all other results are
// appended in discovery order.
//
// Any failure while resolving roots or walking aborts the whole scan with
// no partial result. Archive views are released before Scan returns, on
// every exit path.
func Scan[R any](r Resolver, project func(Resource) (R, bool)) ([]R, error) {
	roots, err := resolveRoots(r.loader, r.namespace)
	if err != nil {
		return nil, err
	}
	defer closeRoots(roots)

	var collected []R

	for _, root := range roots {
		log.Debug(
			"scanning content root",
			slog.String("kind", root.Kind.String()),
			slog.String("base", root.Base),
		)

		for res, err := range root.Walk() {
			if err != nil {
				return nil, err
			}

			log.Debug("found resource", slog.Any("resource", res))

			mapped, ok := project(res)
			if !ok {
				continue
			}

			collected = append(collected, mapped)
		}
	}

	return collected, nil
}
