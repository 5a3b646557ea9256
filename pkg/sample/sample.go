// Package sample decodes raw sample payloads into the plain value trees the
// inference engine consumes. The engine itself never parses bytes; all parse
// failures surface here, before inference runs.
package sample

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a single JSON document into a value tree. Numbers are
// kept as json.Number so inference can classify them by their literal
// encoding (1 is an integer, 1.0 is a number).
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON sample: %w", err)
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON sample")
	}
	return v, nil
}

// DecodeYAML parses a YAML document into a JSON-shaped value tree. YAML
// integers and floats keep their native Go types, which preserves the
// integer/number distinction the same way JSON literals do.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML sample: %w", err)
	}
	return normalize(v)
}

// normalize rewrites YAML decoding artifacts into JSON-shaped values.
// yaml.v3 produces map[string]any for string-keyed mappings; other mapping
// keys have no JSON equivalent and are rejected. Unquoted timestamp scalars
// decode as time.Time and !!binary as []byte; both become strings, which is
// what their JSON encoding would be.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(val), nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v (%T) is not a string", k, k)
			}
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}
