package cmd

import (
	"context"
	"os"

	"github.com/sahilm/fuzzy"
)

// Keys lists every resolvable property key, sorted.
type Keys struct {
	Filter string `help:"Fuzzy-filter keys, best match first" short:"f"`
	Format string `help:"Output format"                       short:"o" default:"text" enum:"text,json,yaml"`
}

// Run executes the keys command.
func (k *Keys) Run(ctx context.Context) error {
	p, err := makeResolver(ctx)
	if err != nil {
		return err
	}

	keys := p.Store().Keys()

	if k.Filter != "" {
		matches := fuzzy.Find(k.Filter, keys)

		filtered := make([]string, 0, len(matches))
		for _, match := range matches {
			filtered = append(filtered, match.Str)
		}

		keys = filtered
	}

	return writeList(os.Stdout, k.Format, keys)
}
