package property

import (
	"log/slog"
	"reflect"
	"strconv"
	"time"
)

// Temporal types with distinct identities for converter registration.
// All are thin wrappers over [time.Time] parsed with a fixed layout;
// zoned values register [time.Time] itself (RFC 3339).
type (
	// Date is a calendar date ("2006-01-02").
	Date time.Time
	// Clock is a wall-clock time of day ("15:04:05").
	Clock time.Time
	// DateTime is a civil date and time ("2006-01-02T15:04:05").
	DateTime time.Time
)

func (d Date) String() string {
	return time.Time(d).Format(time.DateOnly)
}

func (c Clock) String() string {
	return time.Time(c).Format(time.TimeOnly)
}

func (d DateTime) String() string {
	return time.Time(d).Format("2006-01-02T15:04:05")
}

// ConvertFunc converts a string literal to a value of the registered type.
type ConvertFunc func(string) (any, error)

// Converters maps a target type identity to its conversion function.
// Lookup is by exact type; there is no supertype fallback. The table is
// read-mostly: register additional converters before first use.
type Converters struct {
	table map[reflect.Type]ConvertFunc
}

// MakeConverters creates a converter table seeded with the fixed set of
// primitive, temporal, and duration converters.
func MakeConverters() Converters {
	c := Converters{table: make(map[reflect.Type]ConvertFunc)}

	Register(c, func(s string) (string, error) { return s, nil })

	Register(c, func(s string) (bool, error) {
		return strconv.ParseBool(s)
	})

	registerInt[int](c, strconv.IntSize)
	registerInt[int8](c, 8)
	registerInt[int16](c, 16)
	registerInt[int32](c, 32)
	registerInt[int64](c, 64)

	registerUint[uint](c, strconv.IntSize)
	registerUint[uint64](c, 64)

	registerFloat[float32](c, 32)
	registerFloat[float64](c, 64)

	Register(c, func(s string) (Date, error) {
		t, err := time.Parse(time.DateOnly, s)

		return Date(t), err
	})

	Register(c, func(s string) (Clock, error) {
		t, err := time.Parse(time.TimeOnly, s)

		return Clock(t), err
	})

	Register(c, func(s string) (DateTime, error) {
		t, err := time.Parse("2006-01-02T15:04:05", s)

		return DateTime(t), err
	})

	Register(c, func(s string) (time.Time, error) {
		return time.Parse(time.RFC3339, s)
	})

	Register(c, time.ParseDuration)
	Register(c, time.LoadLocation)

	return c
}

// Register adds a converter for type T, replacing any existing entry with
// the same type identity.
func Register[T any](c Converters, fn func(string) (T, error)) {
	c.table[reflect.TypeFor[T]()] = func(s string) (any, error) {
		return fn(s)
	}
}

func registerInt[T int | int8 | int16 | int32 | int64](
	c Converters,
	bits int,
) {
	Register(c, func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 10, bits)

		return T(n), err
	})
}

func registerUint[T uint | uint64](c Converters, bits int) {
	Register(c, func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 10, bits)

		return T(n), err
	})
}

func registerFloat[T float32 | float64](c Converters, bits int) {
	Register(c, func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)

		return T(f), err
	})
}

// convert parses value as the target type. A target with no registered
// converter fails with [ErrUnsupportedType]; a literal the converter
// cannot parse fails with [ErrConvert].
func (c Converters) convert(target reflect.Type, value string) (any, error) {
	fn, ok := c.table[target]
	if !ok {
		return nil, ErrUnsupportedType.
			With(slog.String("type", target.String()))
	}

	parsed, err := fn(value)
	if err != nil {
		return nil, ErrConvert.
			With(
				slog.String("type", target.String()),
				slog.String("value", value),
			).
			Wrap(err)
	}

	return parsed, nil
}
