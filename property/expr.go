package property

import "strings"

// Expr is a parsed placeholder expression of the form "${key}" or
// "${key:default}". It is transient: produced by [ParseExpr], consumed
// immediately, never stored.
type Expr struct {
	Key        string
	Default    string
	HasDefault bool
}

// ParseExpr recognizes the placeholder envelope. It matches only when the
// entire string begins with "${" and ends with "}"; embedded placeholders
// inside surrounding text are not recognized.
//
// The interior up to the first ':' is the key. Everything after it, up to
// but excluding the final '}', is the default value, taken verbatim: a
// default containing another "${...}" is opaque text to the parser and is
// only re-interpreted if passed back through resolution. Envelopes with an
// empty key do not match.
func ParseExpr(s string) (Expr, bool) {
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return Expr{}, false
	}

	interior := s[2 : len(s)-1]

	key, def, hasDefault := strings.Cut(interior, ":")
	if key == "" {
		return Expr{}, false
	}

	return Expr{
		Key:        key,
		Default:    def,
		HasDefault: hasDefault,
	}, true
}
