package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/solstice-io/solstice/property"
)

// Get resolves a single configuration property.
type Get struct {
	Key string `arg:"" help:"Property key or placeholder expression" name:"key"`

	Type     string `help:"Convert the resolved value (string, bool, int, int64, float, duration, date, clock, datetime, time, zone)" short:"t" default:"string"`
	Default  string `help:"Fallback when the key has no resolvable value" short:"d"`
	Required bool   `help:"Fail when the key has no resolvable value" short:"r"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	p, err := makeResolver(ctx)
	if err != nil {
		return err
	}

	resolve, ok := typeTable[g.Type]
	if !ok {
		return ErrUnknownType.
			With(
				slog.String("type", g.Type),
				slog.String("supported", strings.Join(typeNames(), ",")),
			)
	}

	value, found, err := resolve(p, g.Key, g.Default, g.Required)
	if err != nil {
		return err
	}

	if !found {
		return nil // absent and not required: print nothing
	}

	fmt.Println(value)

	return nil
}

// resolveFunc resolves key for one target type. The bool result reports
// whether a value was produced.
type resolveFunc func(
	p property.Resolver,
	key, def string,
	required bool,
) (any, bool, error)

// typed adapts the generic property accessors to a resolveFunc.
// A non-empty default is routed through the placeholder mechanics, so it
// participates in expansion exactly like "${key:default}".
func typed[T any]() resolveFunc {
	return func(
		p property.Resolver,
		key, def string,
		required bool,
	) (any, bool, error) {
		switch {
		case required:
			value, err := property.RequireAs[T](p, key)

			return value, err == nil, err

		case def != "":
			value, err := property.RequireAs[T](
				p,
				"${"+key+":"+def+"}",
			)

			return value, err == nil, err

		default:
			return asAny(property.As[T](p, key))
		}
	}
}

func asAny[T any](value T, ok bool, err error) (any, bool, error) {
	return value, ok, err
}

// typeTable maps --type names to their resolvers.
//
//nolint:gochecknoglobals
var typeTable = map[string]resolveFunc{
	"string":   typed[string](),
	"bool":     typed[bool](),
	"int":      typed[int](),
	"int64":    typed[int64](),
	"float":    typed[float64](),
	"duration": typed[time.Duration](),
	"date":     typed[property.Date](),
	"clock":    typed[property.Clock](),
	"datetime": typed[property.DateTime](),
	"time":     typed[time.Time](),
	"zone":     typed[*time.Location](),
}

// typeNames returns the supported --type names, sorted.
func typeNames() []string {
	return slices.Sorted(maps.Keys(typeTable))
}
