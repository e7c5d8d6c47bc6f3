package resource

import (
	"archive/zip"
	"io"
	"io/fs"
)

// Kind discriminates the two storage forms a content root can take.
type Kind int

const (
	// Directory is a plain directory tree on the local filesystem.
	Directory Kind = iota
	// Archive is a tree contained inside a zip archive.
	Archive
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == Archive {
		return "archive"
	}

	return "directory"
}

// Root is one concrete content root exposing a namespace. It is created
// transiently during a single scan and discarded afterward.
//
// Archive roots hold an open view of their archive which must be released
// with [Root.Close] when the walk completes, on every exit path.
type Root struct {
	// Kind is the storage form of the root.
	Kind Kind
	// Base is the root's base location with any trailing separator
	// stripped: the directory prefix above the namespace path for
	// directory roots, or the "jar:file:...!" archive locator for
	// archive roots.
	Base string

	dir    string    // directory roots: absolute walk origin
	path   string    // archive roots: namespace path inside the archive
	fsys   fs.FS     // archive roots: archive contents
	closer io.Closer // archive roots: releases the archive view
}

// makeDirRoot constructs a directory root walking dir, with base as the
// prefix stripped from entry paths to form resource names.
func makeDirRoot(base, dir string) Root {
	return Root{
		Kind: Directory,
		Base: trimTrailingSep(base),
		dir:  dir,
	}
}

// openArchiveRoot opens a scoped view of the zip archive at archivePath,
// rooted at the namespace-relative path inside it. The caller owns the
// returned root and must release it with Close.
func openArchiveRoot(base, archivePath, relPath string) (Root, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return Root{}, ErrOpenArchive.Wrap(err)
	}

	return Root{
		Kind:   Archive,
		Base:   trimTrailingSep(base),
		path:   relPath,
		fsys:   zr,
		closer: zr,
	}, nil
}

// Close releases the root's archive view. It is a no-op for directory
// roots and safe to call more than once only for them.
func (r Root) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}

// trimLeadingSep removes one leading path separator, if any.
func trimLeadingSep(s string) string {
	if len(s) > 0 && (s[0] == '/' || s[0] == '\\') {
		return s[1:]
	}

	return s
}

// trimTrailingSep removes one trailing path separator, if any.
func trimTrailingSep(s string) string {
	if n := len(s); n > 0 && (s[n-1] == '/' || s[n-1] == '\\') {
		return s[:n-1]
	}

	return s
}
