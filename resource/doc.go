// Package resource discovers file-like artifacts beneath a logical
// namespace, spanning both loose directory trees and archive-contained
// trees.
//
// A namespace is a dot-separated identifier (e.g. "org.example.io") mapped
// to a slash-separated relative path. A [Loader] advertises every content
// root on the active search path exposing that relative path; each root is
// either a plain directory or an entry inside a zip archive. [Scan] walks
// all roots, applies a caller-supplied projection to every regular entry,
// and collects the hits in discovery order:
//
//	rr := resource.Make("org.example.io",
//		resource.WithSearchPath(entries...))
//
//	names, err := resource.Scan(rr, func(res resource.Resource) (string, bool) {
//		if strings.HasSuffix(res.Name, ".txt") {
//			return res.Name, true
//		}
//		return "", false
//	})
//
// Discovery order across roots and within a walk follows the underlying
// filesystem and archive traversal order and is not guaranteed stable;
// callers requiring determinism must sort the projected results.
//
// The name and location of a discovered [Resource] are computed differently
// for directory and archive roots. Consumers branch on whether Name ends in
// a known suffix and otherwise treat Location as opaque; see [Resource].
package resource
