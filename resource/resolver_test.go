package resource

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeFile creates path and any missing parent directories.
func writeFile(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(path), 0o644); err != nil {
		t.Fatal(err)
	}
}

// buildZip creates a zip archive at path containing the named entries.
func buildZip(t *testing.T, path string, names ...string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := w.Write([]byte(name)); err != nil {
			t.Fatal(err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

// names projects every resource to its slash-separated name.
func names(res Resource) (string, bool) {
	return filepath.ToSlash(res.Name), true
}

func TestScanDirectoryRoot(t *testing.T) {
	base := filepath.Join(t.TempDir(), "lib dir")
	ns := filepath.Join(base, "org", "example", "scan")

	writeFile(t, filepath.Join(ns, "sub1", "sub1.txt"))
	writeFile(t, filepath.Join(ns, "sub1", "sub2", "sub2.txt"))
	writeFile(t, filepath.Join(ns, "sub1", "sub2", "sub3", "sub3.txt"))

	r := Make("org.example.scan", WithSearchPath(base))

	got, err := Scan(r, names)
	if err != nil {
		t.Fatal(err)
	}

	slices.Sort(got)

	want := []string{
		"org/example/scan/sub1/sub1.txt",
		"org/example/scan/sub1/sub2/sub2.txt",
		"org/example/scan/sub1/sub2/sub3/sub3.txt",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanDirectoryLocations(t *testing.T) {
	base := t.TempDir()
	ns := filepath.Join(base, "org", "example", "io")

	writeFile(t, filepath.Join(ns, "a.txt"))
	writeFile(t, filepath.Join(ns, "b.txt"))

	r := Make("org.example.io", WithSearchPath(base))

	got, err := Scan(r, func(res Resource) (Resource, bool) {
		return res, true
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("Scan found %d resources, want 2", len(got))
	}

	// Directory resources each carry their own file location.
	for _, res := range got {
		if !strings.HasPrefix(res.Location, "file:") {
			t.Errorf("Location = %q, want file: prefix", res.Location)
		}

		if !strings.HasSuffix(
			filepath.ToSlash(res.Location),
			filepath.ToSlash(res.Name),
		) {
			t.Errorf("Location %q does not end in name %q",
				res.Location, res.Name)
		}
	}
}

func TestScanSuffixFilter(t *testing.T) {
	base := t.TempDir()
	ns := filepath.Join(base, "org", "example", "io")

	writeFile(t, filepath.Join(ns, "Resource.txt"))
	writeFile(t, filepath.Join(ns, "ResourceResolver.txt"))
	writeFile(t, filepath.Join(ns, "notes.dat"))

	r := Make("org.example.io", WithSearchPath(base))

	got, err := Scan(r, func(res Resource) (string, bool) {
		if !strings.HasSuffix(res.Name, ".txt") {
			return "", false
		}

		return filepath.ToSlash(res.Name), true
	})
	if err != nil {
		t.Fatal(err)
	}

	slices.Sort(got)

	want := []string{
		"org/example/io/Resource.txt",
		"org/example/io/ResourceResolver.txt",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanArchiveRoot(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")

	buildZip(t, archive,
		"org/example/scan/a.txt",
		"org/example/scan/deep/b.txt",
		"other/unrelated.txt",
	)

	r := Make("org.example.scan", WithSearchPath(archive))

	got, err := Scan(r, func(res Resource) (Resource, bool) {
		return res, true
	})
	if err != nil {
		t.Fatal(err)
	}

	gotNames := make([]string, 0, len(got))

	for _, res := range got {
		gotNames = append(gotNames, res.Name)

		// Archive resources share the archive locator.
		if !strings.HasPrefix(res.Location, "jar:file:") ||
			!strings.HasSuffix(res.Location, "!") {
			t.Errorf("Location = %q, want jar:file:...! form",
				res.Location)
		}
	}

	slices.Sort(gotNames)

	want := []string{
		"org/example/scan/a.txt",
		"org/example/scan/deep/b.txt",
	}
	if !slices.Equal(gotNames, want) {
		t.Errorf("Scan = %v, want %v", gotNames, want)
	}
}

func TestScanMixedRoots(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "org", "example", "mix", "dir.txt"))

	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	buildZip(t, archive, "org/example/mix/zip.txt")

	r := Make("org.example.mix", WithSearchPath(base, archive))

	got, err := Scan(r, names)
	if err != nil {
		t.Fatal(err)
	}

	slices.Sort(got)

	want := []string{
		"org/example/mix/dir.txt",
		"org/example/mix/zip.txt",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanNamespaceNotFound(t *testing.T) {
	r := Make("org.example.void", WithSearchPath(t.TempDir()))

	got, err := Scan(r, names)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 0 {
		t.Errorf("Scan = %v, want empty", got)
	}
}

// stubLoader returns a fixed location list for any relative path.
type stubLoader struct {
	locations []string
}

func (l stubLoader) Locations(string) ([]string, error) {
	return l.locations, nil
}

func TestScanMalformedLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
	}{
		{
			name:     "invalid percent escape",
			location: "file:/%zz/org/example/void",
		},
		{
			name:     "location without namespace suffix",
			location: "file:/somewhere/else",
		},
		{
			name:     "archive location without marker",
			location: "jar:file:/a.zip/org/example/void",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Make(
				"org.example.void",
				WithLoader(stubLoader{
					locations: []string{tt.location},
				}),
			)

			_, err := Scan(r, names)
			if !errors.Is(err, ErrResolve) {
				t.Errorf("Scan error = %v, want %v",
					err, ErrResolve)
			}
		})
	}
}

func TestScanUnreadableArchive(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus.zip")

	if err := os.WriteFile(bogus, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Make("org.example.void", WithSearchPath(bogus))

	_, err := Scan(r, names)
	if !errors.Is(err, ErrOpenArchive) {
		t.Errorf("Scan error = %v, want %v", err, ErrOpenArchive)
	}
}
