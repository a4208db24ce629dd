package differ

import (
	"bytes"
	"encoding/json"
)

// canonicalize re-encodes JSON with sorted keys and indentation so that key
// order and whitespace do not show up as differences. Non-JSON input is
// returned unchanged.
func canonicalize(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return string(body), false
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return string(body), false
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(body), false
	}
	return string(out) + "\n", true
}
