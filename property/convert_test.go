package property

import (
	"errors"
	"net/netip"
	"reflect"
	"testing"
	"time"
)

func TestConvertPrimitives(t *testing.T) {
	c := MakeConverters()

	tests := []struct {
		name   string
		target reflect.Type
		value  string
		want   any
	}{
		{
			name:   "string",
			target: reflect.TypeFor[string](),
			value:  "hello",
			want:   "hello",
		},
		{
			name:   "bool",
			target: reflect.TypeFor[bool](),
			value:  "true",
			want:   true,
		},
		{
			name:   "int",
			target: reflect.TypeFor[int](),
			value:  "-42",
			want:   -42,
		},
		{
			name:   "int64",
			target: reflect.TypeFor[int64](),
			value:  "9000000000",
			want:   int64(9000000000),
		},
		{
			name:   "uint",
			target: reflect.TypeFor[uint](),
			value:  "42",
			want:   uint(42),
		},
		{
			name:   "float64",
			target: reflect.TypeFor[float64](),
			value:  "0.5",
			want:   0.5,
		},
		{
			name:   "duration",
			target: reflect.TypeFor[time.Duration](),
			value:  "1h30m",
			want:   90 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.convert(tt.target, tt.value)
			if err != nil {
				t.Fatalf("convert(%q) error: %v", tt.value, err)
			}

			if got != tt.want {
				t.Errorf("convert(%q) = %v (%T), want %v (%T)",
					tt.value, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConvertTemporal(t *testing.T) {
	c := MakeConverters()

	t.Run("date", func(t *testing.T) {
		got, err := c.convert(reflect.TypeFor[Date](), "2026-08-25")
		if err != nil {
			t.Fatal(err)
		}

		if got.(Date).String() != "2026-08-25" {
			t.Errorf("Date = %v", got)
		}
	})

	t.Run("clock", func(t *testing.T) {
		got, err := c.convert(reflect.TypeFor[Clock](), "13:37:00")
		if err != nil {
			t.Fatal(err)
		}

		if got.(Clock).String() != "13:37:00" {
			t.Errorf("Clock = %v", got)
		}
	})

	t.Run("datetime", func(t *testing.T) {
		got, err := c.convert(
			reflect.TypeFor[DateTime](), "2026-08-25T13:37:00",
		)
		if err != nil {
			t.Fatal(err)
		}

		if got.(DateTime).String() != "2026-08-25T13:37:00" {
			t.Errorf("DateTime = %v", got)
		}
	})

	t.Run("zoned", func(t *testing.T) {
		got, err := c.convert(
			reflect.TypeFor[time.Time](), "2026-08-25T13:37:00Z",
		)
		if err != nil {
			t.Fatal(err)
		}

		want := time.Date(2026, 8, 25, 13, 37, 0, 0, time.UTC)
		if !got.(time.Time).Equal(want) {
			t.Errorf("time.Time = %v, want %v", got, want)
		}
	})

	t.Run("zone", func(t *testing.T) {
		got, err := c.convert(
			reflect.TypeFor[*time.Location](), "UTC",
		)
		if err != nil {
			t.Fatal(err)
		}

		if got.(*time.Location) != time.UTC {
			t.Errorf("Location = %v, want UTC", got)
		}
	})
}

func TestConvertErrors(t *testing.T) {
	c := MakeConverters()

	t.Run("unsupported type", func(t *testing.T) {
		_, err := c.convert(reflect.TypeFor[[]byte](), "x")
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("convert error = %v, want %v",
				err, ErrUnsupportedType)
		}
	})

	t.Run("unparseable literal", func(t *testing.T) {
		_, err := c.convert(reflect.TypeFor[int](), "not-a-number")
		if !errors.Is(err, ErrConvert) {
			t.Errorf("convert error = %v, want %v",
				err, ErrConvert)
		}
	})
}

func TestRegister(t *testing.T) {
	c := MakeConverters()

	Register(c, netip.ParseAddr)

	got, err := c.convert(reflect.TypeFor[netip.Addr](), "192.168.1.1")
	if err != nil {
		t.Fatal(err)
	}

	want := netip.MustParseAddr("192.168.1.1")
	if got.(netip.Addr) != want {
		t.Errorf("convert = %v, want %v", got, want)
	}
}

func TestRegisterReplaces(t *testing.T) {
	c := MakeConverters()

	Register(c, func(string) (int, error) { return 7, nil })

	got, err := c.convert(reflect.TypeFor[int](), "anything")
	if err != nil {
		t.Fatal(err)
	}

	if got != 7 {
		t.Errorf("convert = %v, want 7", got)
	}
}
