package property

import (
	"errors"
	"testing"
)

func testResolver() Resolver {
	return Make(
		WithEnviron([]string{
			"APP_NAME=solstice",
			"HOME=/home/solstice",
		}),
		WithEntries(
			Entry{Key: "app.title", Value: "Solstice"},
			Entry{Key: "app.name", Value: "${APP_NAME}"},
			Entry{Key: "app.home", Value: "${HOME:/tmp}"},
			Entry{Key: "app.alias", Value: "${app.title}"},
			Entry{Key: "loop.a", Value: "${loop.b}"},
			Entry{Key: "loop.b", Value: "${loop.a}"},
			Entry{Key: "loop.self", Value: "${loop.self}"},
		),
	)
}

func TestResolverGet(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name string
		key  string
		want string
		ok   bool
	}{
		{
			name: "plain key",
			key:  "app.title",
			want: "Solstice",
			ok:   true,
		},
		{
			name: "missing plain key",
			key:  "no.such.key",
			ok:   false,
		},
		{
			name: "stored value expands one level",
			key:  "app.name",
			want: "solstice",
			ok:   true,
		},
		{
			name: "stored default expression prefers the key",
			key:  "app.home",
			want: "/home/solstice",
			ok:   true,
		},
		{
			name: "stored reference to another entry",
			key:  "app.alias",
			want: "Solstice",
			ok:   true,
		},
		{
			name: "expression key with default falls back",
			key:  "${no.such.key:fallback}",
			want: "fallback",
			ok:   true,
		},
		{
			name: "expression key resolves when present",
			key:  "${app.title:fallback}",
			want: "Solstice",
			ok:   true,
		},
		{
			name: "nested default expands",
			key:  "${no.such.key:${APP_NAME:other}}",
			want: "solstice",
			ok:   true,
		},
		{
			name: "nested default falls through twice",
			key:  "${no.such.key:${also.missing:other}}",
			want: "other",
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := r.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.key, err)
			}

			if ok != tt.ok {
				t.Fatalf("Get(%q) ok = %v, want %v",
					tt.key, ok, tt.ok)
			}

			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q",
					tt.key, got, tt.want)
			}
		})
	}
}

func TestResolverGetIdempotent(t *testing.T) {
	r := testResolver()

	first, _, err := r.Get("app.name")
	if err != nil {
		t.Fatal(err)
	}

	second, _, err := r.Get("app.name")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("repeated Get differs: %q != %q", first, second)
	}
}

func TestResolverGetRequiredMissing(t *testing.T) {
	r := testResolver()

	_, _, err := r.Get("${no.such.key}")
	if !errors.Is(err, ErrMissingProperty) {
		t.Errorf("Get error = %v, want %v", err, ErrMissingProperty)
	}
}

func TestResolverGetDefault(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name string
		key  string
		def  string
		want string
	}{
		{
			name: "present key ignores default",
			key:  "app.title",
			def:  "other",
			want: "Solstice",
		},
		{
			name: "missing key takes default",
			key:  "no.such.key",
			def:  "other",
			want: "other",
		},
		{
			name: "default expands as an expression",
			key:  "no.such.key",
			def:  "${APP_NAME}",
			want: "solstice",
		},
		{
			name: "empty default",
			key:  "no.such.key",
			def:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetDefault(tt.key, tt.def)
			if err != nil {
				t.Fatalf("GetDefault(%q, %q) error: %v",
					tt.key, tt.def, err)
			}

			if got != tt.want {
				t.Errorf("GetDefault(%q, %q) = %q, want %q",
					tt.key, tt.def, got, tt.want)
			}
		})
	}
}

func TestResolverRequire(t *testing.T) {
	r := testResolver()

	got, err := r.Require("app.title")
	if err != nil {
		t.Fatal(err)
	}

	if got != "Solstice" {
		t.Errorf("Require = %q, want %q", got, "Solstice")
	}

	_, err = r.Require("no.such.key")
	if !errors.Is(err, ErrMissingProperty) {
		t.Errorf("Require error = %v, want %v", err, ErrMissingProperty)
	}
}

func TestResolverCyclicReference(t *testing.T) {
	r := testResolver()

	for _, key := range []string{"loop.a", "loop.b", "loop.self"} {
		t.Run(key, func(t *testing.T) {
			_, _, err := r.Get(key)
			if !errors.Is(err, ErrCyclicReference) {
				t.Errorf("Get(%q) error = %v, want %v",
					key, err, ErrCyclicReference)
			}
		})
	}
}

func TestResolverContains(t *testing.T) {
	r := testResolver()

	if !r.Contains("app.title") {
		t.Error("Contains(app.title) = false")
	}

	if !r.Contains("APP_NAME") {
		t.Error("Contains(APP_NAME) = false")
	}

	if r.Contains("no.such.key") {
		t.Error("Contains(no.such.key) = true")
	}

	// Contains is a raw store lookup; expressions are not interpreted.
	if r.Contains("${app.title}") {
		t.Error("Contains(${app.title}) = true")
	}
}

func TestResolverEntriesOverrideEnviron(t *testing.T) {
	r := Make(
		WithEnviron([]string{"APP_NAME=environ"}),
		WithEntries(Entry{Key: "APP_NAME", Value: "explicit"}),
	)

	got, _, err := r.Get("APP_NAME")
	if err != nil {
		t.Fatal(err)
	}

	if got != "explicit" {
		t.Errorf("Get(APP_NAME) = %q, want %q", got, "explicit")
	}
}

func TestAs(t *testing.T) {
	r := Make(WithEntries(
		Entry{Key: "port", Value: "8080"},
		Entry{Key: "verbose", Value: "true"},
		Entry{Key: "ratio", Value: "0.75"},
		Entry{Key: "bogus", Value: "not-a-number"},
	))

	t.Run("int", func(t *testing.T) {
		got, ok, err := As[int](r, "port")
		if err != nil || !ok {
			t.Fatalf("As[int] = (%v, %v)", ok, err)
		}

		if got != 8080 {
			t.Errorf("As[int] = %d, want 8080", got)
		}
	})

	t.Run("bool", func(t *testing.T) {
		got, ok, err := As[bool](r, "verbose")
		if err != nil || !ok {
			t.Fatalf("As[bool] = (%v, %v)", ok, err)
		}

		if !got {
			t.Error("As[bool] = false, want true")
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, ok, err := As[float64](r, "no.such.key")
		if err != nil {
			t.Fatal(err)
		}

		if ok {
			t.Error("As ok = true for missing key")
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		_, _, err := As[int](r, "bogus")
		if !errors.Is(err, ErrConvert) {
			t.Errorf("As error = %v, want %v", err, ErrConvert)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		type opaque struct{ _ int }

		_, _, err := As[opaque](r, "port")
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("As error = %v, want %v",
				err, ErrUnsupportedType)
		}
	})

	t.Run("default", func(t *testing.T) {
		got, err := AsDefault(r, "no.such.key", 42)
		if err != nil {
			t.Fatal(err)
		}

		if got != 42 {
			t.Errorf("AsDefault = %d, want 42", got)
		}
	})

	t.Run("required", func(t *testing.T) {
		_, err := RequireAs[int](r, "no.such.key")
		if !errors.Is(err, ErrMissingProperty) {
			t.Errorf("RequireAs error = %v, want %v",
				err, ErrMissingProperty)
		}
	})
}
