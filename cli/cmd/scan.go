package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/solstice-io/solstice/log"
	"github.com/solstice-io/solstice/resource"
)

// Scan enumerates resources beneath a namespace on the search path.
type Scan struct {
	Namespace string `arg:"" help:"Dotted namespace to scan (e.g. org.example.io)" name:"namespace"`

	Suffix string `help:"Only include resource names ending with this suffix"        short:"x"`
	Format string `help:"Output format"                                              short:"o" default:"text" enum:"text,json,yaml"`
	Sort   bool   `help:"Sort results (discovery order is filesystem-dependent)"               default:"true"                       negatable:""`
}

// Run executes the scan command.
func (s *Scan) Run(ctx context.Context) error {
	rr := resource.Make(
		s.Namespace,
		resource.WithSearchPath(searchPathFrom(ctx)...),
	)

	names, err := resource.Scan(rr, s.project)
	if err != nil {
		return err
	}

	if s.Sort {
		slices.Sort(names)
	}

	log.DebugContext(ctx, "scan complete",
		slog.String("namespace", s.Namespace),
		slog.Int("count", len(names)),
	)

	return writeList(os.Stdout, s.Format, names)
}

// project filters by the optional suffix and normalizes names to forward
// slashes.
func (s *Scan) project(res resource.Resource) (string, bool) {
	if s.Suffix != "" && !strings.HasSuffix(res.Name, s.Suffix) {
		return "", false
	}

	return filepath.ToSlash(res.Name), true
}

// writeList renders items as plain lines, JSON, or YAML.
func writeList(w io.Writer, format string, items []string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(items)
		if err != nil {
			return ErrMarshalOutput.Wrap(err)
		}

	case "yaml":
		out, err := yaml.Marshal(items)
		if err != nil {
			return ErrMarshalOutput.Wrap(err)
		}

		_, err = w.Write(out)
		if err != nil {
			return ErrMarshalOutput.Wrap(err)
		}

	default:
		for _, item := range items {
			fmt.Fprintln(w, item)
		}
	}

	return nil
}
