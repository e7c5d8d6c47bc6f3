package property

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// LoadYAML reads one or more YAML documents and flattens them into ordered
// explicit entries suitable for [MakeStore]. Nested mappings become dotted
// keys ("server.port"), sequences become index-dotted keys ("hosts.0"),
// and scalars are rendered as strings. Keys are emitted in sorted order at
// each nesting level so overlay order is deterministic.
func LoadYAML(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)

	var entries []Entry

	for {
		var doc map[string]any

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, ErrLoadSource.Wrap(err)
		}

		entries, err = flatten(entries, "", doc)
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// flatten appends the dotted entries of value beneath prefix.
func flatten(entries []Entry, prefix string, value any) ([]Entry, error) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			var err error

			entries, err = flatten(entries, join(prefix, key), v[key])
			if err != nil {
				return nil, err
			}
		}

	case map[any]any:
		// Non-string keys have no dotted form.
		keys := make([]string, 0, len(v))
		sub := make(map[string]any, len(v))

		for key, val := range v {
			s, ok := key.(string)
			if !ok {
				return nil, ErrInvalidSourceKey.
					With(slog.String("prefix", prefix)).
					With(slog.Any("key", key))
			}

			keys = append(keys, s)
			sub[s] = val
		}

		slices.Sort(keys)

		for _, key := range keys {
			var err error

			entries, err = flatten(entries, join(prefix, key), sub[key])
			if err != nil {
				return nil, err
			}
		}

	case []any:
		for i, item := range v {
			var err error

			entries, err = flatten(
				entries,
				join(prefix, strconv.Itoa(i)),
				item,
			)
			if err != nil {
				return nil, err
			}
		}

	case nil:
		entries = append(entries, Entry{Key: prefix})

	case string:
		entries = append(entries, Entry{Key: prefix, Value: v})

	default:
		entries = append(entries, Entry{
			Key:   prefix,
			Value: fmt.Sprint(v),
		})
	}

	return entries, nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
