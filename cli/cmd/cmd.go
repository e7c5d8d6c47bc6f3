package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/solstice-io/solstice/property"
)

type (
	contextKey         struct{}
	searchPathKey      struct{}
	propertySourcesKey struct{}
)

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithSearchPath returns a new context.Context containing the resource
// search path entries.
func WithSearchPath(ctx context.Context, entries []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, entries)
}

func searchPathFrom(ctx context.Context) []string {
	entries, _ := ctx.Value(searchPathKey{}).([]string)

	return entries
}

// WithPropertySources returns a new context.Context containing the ordered
// list of YAML property source file paths.
func WithPropertySources(
	ctx context.Context,
	sources []string,
) context.Context {
	return context.WithValue(ctx, propertySourcesKey{}, sources)
}

func propertySourcesFrom(ctx context.Context) []string {
	sources, _ := ctx.Value(propertySourcesKey{}).([]string)

	return sources
}

// makeResolver builds the property resolver shared by the property
// commands: the process environment overlaid, in order, by each YAML
// property source named on the command line.
func makeResolver(ctx context.Context) (property.Resolver, error) {
	var entries []property.Entry

	for _, source := range propertySourcesFrom(ctx) {
		file, err := os.Open(source)
		if err != nil {
			return property.Resolver{}, ErrLoadProperties.
				With(slog.String("file", source)).
				Wrap(err)
		}

		loaded, err := property.LoadYAML(file)
		file.Close()

		if err != nil {
			return property.Resolver{}, ErrLoadProperties.
				With(slog.String("file", source)).
				Wrap(err)
		}

		entries = append(entries, loaded...)
	}

	return property.Make(
		property.WithEnviron(os.Environ()),
		property.WithEntries(entries...),
	), nil
}
