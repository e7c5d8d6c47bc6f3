// Package property resolves configuration values addressed by key.
//
// A [Store] is a flat key-to-string mapping built once from an explicit
// environment list overlaid by explicit entries. A [Resolver] answers
// lookups through plain access, placeholder expansion, recursive default
// resolution, and typed conversion:
//
//	p := property.Make(
//		property.WithEnviron(os.Environ()),
//		property.WithEntries(entries...))
//
//	title, err := p.GetDefault("${app.title:Solstice}", "")
//	port, err := property.RequireAs[int](p, "server.port")
//
// # Placeholder syntax
//
// A value or key of the form "${key}" or "${key:default}" is a placeholder
// expression. The envelope must span the entire string; embedded
// placeholders inside surrounding text are not recognized. The default is
// taken verbatim up to the closing brace and may itself be a placeholder,
// expanded when the default is used:
//
//	${app.title:${APP_NAME:Solstice}}
//
// Resolution recurses through nested keys and defaults. Each top-level
// call tracks the keys it has visited and fails with [ErrCyclicReference]
// when a key's resolution depends on itself.
//
// # Typed lookup
//
// Converters map a resolved string to a target type, keyed by exact type
// identity with no supertype fallback. A fixed set covering strings,
// integer widths, floats, bool, [Date], [Clock], [DateTime], [time.Time],
// [time.Duration], and [*time.Location] is registered at construction;
// additional converters are registered with [Register] before first use.
package property
