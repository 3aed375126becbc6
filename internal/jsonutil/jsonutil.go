// Package jsonutil provides shared helpers for reading JSON documents with
// contextual errors.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"os"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalFile reads path and unmarshals it into a T.
// Errors are wrapped with the path.
func UnmarshalFile[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", path, err)
	}
	if err := UnmarshalWithContext(data, &out, "parse "+path); err != nil {
		return out, err
	}
	return out, nil
}

// MarshalIndent marshals v with two-space indentation and a trailing newline.
func MarshalIndent(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
