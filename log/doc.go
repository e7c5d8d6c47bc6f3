// Package log provides a simplified logging interface based on [log/slog].
//
// A [Logger] is an immutable value configured at creation time with
// functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// The package also maintains a default logger used by the package-level
// functions. It is reconfigured with [Config], which the CLI calls as soon
// as the logging flags have been parsed:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithPretty(true))
//	log.Debug("resolver ready", slog.String("namespace", ns))
//
// Two machine formats are supported, [FormatText] and [FormatJSON]. When
// pretty printing is enabled with [WithPretty], text output is colorized
// for terminals instead.
package log
