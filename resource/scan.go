package resource

import (
	"log/slog"
	"net/url"
	"strings"
)

// Scheme prefixes recognized in loader locations.
const (
	fileScheme    = "file:"
	archiveScheme = "jar:"
)

// resolveRoots resolves a dotted namespace to every content root exposing
// it on the loader's search path.
//
// Each location is percent-decoded, stripped of any trailing separator,
// and split into a base prefix and the namespace path suffix. Archive
// locations open a scoped view of the archive which the caller must
// release; if any location fails, views already opened are released and
// the whole resolution fails.
func resolveRoots(loader Loader, namespace string) ([]Root, error) {
	relPath := strings.ReplaceAll(namespace, ".", "/")

	locations, err := loader.Locations(relPath)
	if err != nil {
		return nil, err
	}

	roots := make([]Root, 0, len(locations))

	for _, location := range locations {
		root, err := resolveRoot(location, relPath)
		if err != nil {
			closeRoots(roots)

			return nil, err
		}

		roots = append(roots, root)
	}

	return roots, nil
}

// resolveRoot classifies and opens a single location.
func resolveRoot(location, relPath string) (Root, error) {
	decoded, err := url.PathUnescape(location)
	if err != nil {
		return Root{}, ErrResolve.
			With(slog.String("location", location)).
			Wrap(err)
	}

	decoded = trimTrailingSep(decoded)

	if !strings.HasSuffix(decoded, relPath) {
		return Root{}, ErrResolve.
			With(
				slog.String("location", decoded),
				slog.String("path", relPath),
			)
	}

	base := decoded[:len(decoded)-len(relPath)]

	if strings.HasPrefix(decoded, archiveScheme) {
		return resolveArchiveRoot(decoded, base, relPath)
	}

	// Local-file scheme markers are stripped from directory locations;
	// archive bases keep theirs embedded.
	base = strings.TrimPrefix(base, fileScheme)
	dir := strings.TrimPrefix(decoded, fileScheme)

	return makeDirRoot(base, dir), nil
}

// resolveArchiveRoot opens the archive named by a "jar:file:...!/rel"
// location.
func resolveArchiveRoot(decoded, base, relPath string) (Root, error) {
	marker := strings.Index(decoded, "!")
	if marker < 0 {
		return Root{}, ErrResolve.
			With(slog.String("location", decoded))
	}

	archivePath := strings.TrimPrefix(
		decoded[:marker],
		archiveScheme+fileScheme,
	)

	root, err := openArchiveRoot(base, archivePath, relPath)
	if err != nil {
		e, ok := err.(*Error)
		if ok {
			return Root{}, e.With(slog.String("location", decoded))
		}

		return Root{}, err
	}

	return root, nil
}

// closeRoots releases every archive view held by roots.
func closeRoots(roots []Root) {
	for _, root := range roots {
		_ = root.Close()
	}
}
