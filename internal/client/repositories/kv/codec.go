package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedType is returned when a stored value has a JSON type the
// caller cannot use, e.g. an object where a string was expected.
var ErrUnexpectedType = errors.New("unexpected value type")

// GetString reads key as a string. Values written by SetString are JSON
// strings; JSON numbers and raw non-JSON bytes are accepted as well.
// A JSON null reads as absent.
func GetString(ctx context.Context, s Store, key string) (string, bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if raw == nil {
		return "", false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return string(raw), true, nil
	}

	switch t := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return t, true, nil
	case json.Number:
		return t.String(), true, nil
	default:
		return "", false, fmt.Errorf("kv[%s] holds %T: %w", key, v, ErrUnexpectedType)
	}
}

// SetString stores value as a JSON string.
func SetString(ctx context.Context, s Store, key, value string) error {
	return SetJSON(ctx, s, key, value)
}

// GetJSON decodes the value under key into v. It reports false with a nil
// error when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode kv[%s]: %w", key, err)
	}
	return true, nil
}

// SetJSON stores the JSON encoding of v under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode kv[%s]: %w", key, err)
	}
	return s.Set(ctx, key, b)
}
