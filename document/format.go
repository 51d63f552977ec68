package document

import (
	"encoding/json"
	"fmt"
)

// FormatDocument renders 'fc' as pretty-printed JSON with two-space
// indentation and a trailing newline. Output is stable across runs: struct
// fields marshal in declaration order and map keys marshal sorted, so that
// two transforms of the same input diff cleanly.
func FormatDocument(fc *FeatureCollection) ([]byte, error) {

	body, err := json.MarshalIndent(fc, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal feature collection, %w", err)
	}

	return append(body, '\n'), nil
}

// FormatFeature serializes 'f' compactly for subsequent enrichment or for
// inclusion in a `FeatureCollection`.
func FormatFeature(f *Feature) ([]byte, error) {

	body, err := json.Marshal(f)

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal feature, %w", err)
	}

	return body, nil
}
