package resource

import "log/slog"

// Resource describes one discovered file-like entry.
//
// Name is the entry's path relative to a content root with no leading path
// separator. For directory roots it is relative to the root's base
// directory (the namespace path is not included); for archive roots it is
// the full archive-internal path (the namespace path remains embedded).
//
// Location identifies where the entry came from. For directory roots it is
// a "file:"-prefixed absolute path distinct per entry; for archive roots it
// is the archive's base location shared by every entry under that root.
// The asymmetry mirrors how the two storage forms address their contents
// and is relied upon by consumers.
type Resource struct {
	Location string
	Name     string
}

// String returns the resource in "location!name" form for diagnostics.
func (r Resource) String() string {
	return r.Location + "!" + r.Name
}

// LogValue implements slog.LogValuer.
func (r Resource) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("location", r.Location),
		slog.String("name", r.Name),
	)
}
