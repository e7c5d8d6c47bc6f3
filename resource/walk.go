package resource

import (
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"
)

// Walk returns a lazy, finite, non-restartable sequence of every regular
// (non-directory) entry beneath the root. The first I/O failure aborts the
// walk: it is yielded as the final element and anything collected from the
// root before it must be discarded by the caller.
//
// Name and location follow per-kind rules:
//
//   - Directory: Name is the entry's path with the root's base prefix and
//     one leading separator removed; Location is "file:" plus the entry's
//     own path.
//   - Archive: Name is the entry's full archive-internal path with one
//     leading separator removed, so the namespace path stays embedded;
//     Location is the root's base, identical for every entry.
func (r Root) Walk() iter.Seq2[Resource, error] {
	if r.Kind == Archive {
		return r.walkArchive()
	}

	return r.walkDir()
}

func (r Root) walkDir() iter.Seq2[Resource, error] {
	return func(yield func(Resource, error) bool) {
		err := filepath.WalkDir(
			r.dir,
			func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if !d.Type().IsRegular() {
					return nil
				}

				res := Resource{
					Location: fileScheme + path,
					Name: trimLeadingSep(
						strings.TrimPrefix(path, r.Base),
					),
				}

				if !yield(res, nil) {
					return fs.SkipAll
				}

				return nil
			},
		)
		if err != nil {
			yield(Resource{}, ErrWalk.
				With(slog.String("root", r.dir)).
				Wrap(err))
		}
	}
}

func (r Root) walkArchive() iter.Seq2[Resource, error] {
	return func(yield func(Resource, error) bool) {
		err := fs.WalkDir(
			r.fsys,
			r.path,
			func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if !d.Type().IsRegular() {
					return nil
				}

				res := Resource{
					Location: r.Base,
					Name:     trimLeadingSep(path),
				}

				if !yield(res, nil) {
					return fs.SkipAll
				}

				return nil
			},
		)
		if err != nil {
			yield(Resource{}, ErrWalk.
				With(slog.String("root", r.Base)).
				Wrap(err))
		}
	}
}
