package upstream

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Relay decodes a raw upstream body into an arbitrary JSON value. The value
// is passed through exactly as upstream produced it: lists stay lists (an
// empty list is a success, not a not-found), objects stay objects, no field
// is renamed or dropped. A body that is not valid JSON is an ErrDecode.
func Relay(body []byte) (any, error) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return value, nil
}

// Sink decodes the body like Relay, then writes the value to destPath as
// indented JSON, creating missing parent directories and overwriting any
// existing file. It returns the destination path on success. Filesystem
// failures come back as *SinkError so callers can distinguish them from
// upstream failures. Nothing is written unless the decode succeeded, so a
// failed call never leaves a file claiming success.
func Sink(body []byte, destPath string) (string, error) {
	value, err := Relay(body)
	if err != nil {
		return "", err
	}

	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", &SinkError{Path: destPath, Err: err}
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", &SinkError{Path: destPath, Err: err}
		}
	}
	if err := os.WriteFile(destPath, encoded, 0o644); err != nil {
		return "", &SinkError{Path: destPath, Err: err}
	}
	return destPath, nil
}
