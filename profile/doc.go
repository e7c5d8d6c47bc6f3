// Package profile provides optional runtime profiling built on
// [github.com/pkg/profile].
//
// Profiling must be enabled at build time with the "pprof" build tag;
// without it every operation is a no-op with zero overhead. When enabled,
// the CLI exposes the supported modes through the --pprof-mode flag and
// writes profile files beneath the cache directory.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
