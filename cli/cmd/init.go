package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/solstice-io/solstice/log"
	"github.com/solstice-io/solstice/pkg"
)

// propertiesBase is the file name of the starter property source written
// beside the configuration file.
const propertiesBase = "properties.yaml"

// Init writes a starter YAML property source file.
type Init struct {
	Force bool   `help:"Overwrite an existing file"                      short:"f"`
	Out   string `help:"Output path (defaults to the config directory)"  short:"O" type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	path := i.Out
	if path == "" {
		ktx := kongContextFrom(ctx)

		confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
		if !ok {
			panic("internal error: config path undefined")
		}

		path = filepath.Join(filepath.Dir(confPath), propertiesBase)
	}

	_, err := os.Stat(path)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", path)).
			Wrap(ErrFileExists)
	}

	out, err := yaml.Marshal(starterProperties())
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", path)).
			Wrap(err)
	}

	err = os.WriteFile(path, out, 0o600)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized property source",
		slog.String("path", path),
	)

	return nil
}

// starterProperties is the document written by init: a few dotted keys
// demonstrating nesting, placeholder defaults, and typed values.
func starterProperties() map[string]any {
	return map[string]any{
		"app": map[string]any{
			"title":   "${APP_TITLE:" + pkg.Name + "}",
			"version": "${APP_VERSION:0.1.0}",
		},
		"server": map[string]any{
			"host":             "${HOST:localhost}",
			"port":             8080,
			"read-timeout":     "30s",
			"shutdown-timeout": "${server.read-timeout}",
		},
	}
}
