package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/solstice-io/solstice/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so the format applies to any messages emitted
// while kong is still parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"json"    enum:"json,text"             help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                              help:"Set timestamp format."`
	Caller     bool      `default:"false"                                help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"false"                                help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start finalizes logger configuration with all parsed values, including
// those that don't pass through TextUnmarshaler.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to apply logger
// flags before kong begins parsing, so logger configuration takes effect
// regardless of flag position. Boolean flags like --log-pretty don't pass
// through TextUnmarshaler, which this pre-scan also covers.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value := splitFlag(args, &i)

		switch name {
		case "log-level":
			log.Config(log.WithLevel(log.ParseLevel(value)))

		case "log-format":
			log.Config(log.WithFormat(log.ParseFormat(value)))

		case "log-time-layout":
			log.Config(log.WithTimeLayout(value))

		case "log-caller", "no-log-caller":
			log.Config(log.WithCaller(name == "log-caller"))

		case "log-pretty", "no-log-pretty":
			log.Config(log.WithPretty(name == "log-pretty"))
		}
	}
}

// splitFlag extracts the flag name and value at args[*i], consuming the
// following argument when the value is detached ("--flag value").
func splitFlag(args []string, i *int) (name, value string) {
	arg := args[*i]

	if !strings.HasPrefix(arg, "--") {
		return "", ""
	}

	name = strings.TrimPrefix(arg, "--")

	name, value, ok := strings.Cut(name, "=")
	if ok {
		return name, value
	}

	// Only value-carrying logger flags consume the next argument.
	switch name {
	case "log-level", "log-format", "log-time-layout":
		if *i+1 < len(args) {
			*i++

			return name, args[*i]
		}
	}

	return name, ""
}
