// Package cli contains the command line interface for solstice.
//
// # Usage
//
// The CLI exposes the resource and property cores to the shell:
//
//	solstice scan org.example.io --suffix .txt
//	solstice get server.port --type int --default 8080
//	solstice keys --filter srv
//	solstice browse
//	solstice init
//
// # Resource search path
//
// Resources are discovered beneath the entries of a search path: a list of
// directories and zip archives taken from the SOLSTICE_PATH environment
// variable (platform list separator) with any --path entries prefixed.
//
// # Property sources
//
// Properties resolve against the process environment overlaid, in order,
// by the YAML files named with --properties. Nested documents flatten to
// dotted keys.
//
// # Logging options
//
//   - --log-level: set minimum log level (debug, info, warn, error)
//   - --log-format: set log output format (json, text)
//   - --log-time-layout: set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: include caller information in log output
//   - --log-pretty: colorize text output
//
// # Profiling options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: set profile output directory
package cli
