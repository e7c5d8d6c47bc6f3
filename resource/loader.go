package resource

import (
	"archive/zip"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/mung"
)

// Loader is the active resource-loading mechanism. Locations returns a URI
// string for every content root on its search path that exposes the given
// slash-separated relative path. The same relative path may be exposed by
// more than one root.
//
// Directory roots use the form "file:/abs/path/rel" and archive roots the
// form "jar:file:/abs/archive.zip!/rel". Paths are percent-encoded.
type Loader interface {
	Locations(relPath string) ([]string, error)
}

// PathLoader is a [Loader] backed by an ordered search path of directories
// and zip archives. Entries that do not exist are ignored.
type PathLoader struct {
	entries []string
}

// MakePathLoader creates a PathLoader over the given search path entries.
func MakePathLoader(entries ...string) PathLoader {
	return PathLoader{entries: entries}
}

// SearchPath composes a search path from a delimited path list (typically
// the value of an environment variable) with the given entries prefixed,
// in order. Duplicate and empty entries are dropped.
func SearchPath(pathList string, prefix ...string) []string {
	delim := string(os.PathListSeparator)

	list := mung.Make(
		mung.WithSubjectItems(pathList),
		mung.WithDelim(delim),
		mung.WithPrefixItems(prefix...),
	).String()

	seen := make(map[string]struct{})
	entries := make([]string, 0, len(prefix)+1)

	for _, entry := range strings.Split(list, delim) {
		if entry == "" {
			continue
		}

		if _, ok := seen[entry]; ok {
			continue
		}

		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}

// Locations implements [Loader].
//
// A directory entry advertises relPath when the joined path exists as a
// directory. An archive entry (any regular file on the search path)
// advertises relPath when the archive contains at least one entry beneath
// it. An archive that cannot be opened fails the whole lookup.
func (l PathLoader) Locations(relPath string) ([]string, error) {
	var locations []string

	for _, entry := range l.entries {
		info, err := os.Stat(entry)
		if err != nil {
			continue // missing search path entries are not an error
		}

		if info.IsDir() {
			loc, ok := dirLocation(entry, relPath)
			if ok {
				locations = append(locations, loc)
			}

			continue
		}

		loc, ok, err := archiveLocation(entry, relPath)
		if err != nil {
			return nil, err
		}

		if ok {
			locations = append(locations, loc)
		}
	}

	return locations, nil
}

// dirLocation returns the "file:" URI for relPath beneath dir, if present.
func dirLocation(dir, relPath string) (string, bool) {
	target := filepath.Join(dir, filepath.FromSlash(relPath))

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return "", false
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", false
	}

	return "file:" + escapePath(filepath.ToSlash(abs)), true
}

// archiveLocation returns the "jar:file:" URI for relPath inside the zip
// archive at path, if the archive contains entries beneath it.
func archiveLocation(path, relPath string) (string, bool, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", false, ErrOpenArchive.
			With(slog.String("archive", path)).
			Wrap(err)
	}
	defer zr.Close()

	prefix := relPath + "/"

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, prefix) || f.Name == relPath {
			abs, err := filepath.Abs(path)
			if err != nil {
				return "", false, nil
			}

			uri := "jar:file:" + escapePath(filepath.ToSlash(abs)) +
				"!/" + relPath

			return uri, true, nil
		}
	}

	return "", false, nil
}

// escapePath percent-encodes a slash-separated path for use in a URI.
func escapePath(p string) string {
	u := url.URL{Path: p}

	return u.EscapedPath()
}
