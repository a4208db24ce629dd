package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ResponseMode selects how a success body is decoded.
type ResponseMode int

const (
	ModeJSON ResponseMode = iota
	ModeBytes
	ModeText
)

func (m ResponseMode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeBytes:
		return "bytes"
	case ModeText:
		return "text"
	default:
		return fmt.Sprintf("ResponseMode(%d)", int(m))
	}
}

// ParseResponseMode maps "json", "bytes" and "text" (case-insensitive) to a mode.
func ParseResponseMode(s string) (ResponseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return ModeJSON, nil
	case "bytes", "binary":
		return ModeBytes, nil
	case "text":
		return ModeText, nil
	default:
		return ModeJSON, fmt.Errorf("unknown response mode %q", s)
	}
}

// DecodeBody converts a raw body according to mode.
// JSON decodes into any with numbers kept as json.Number; bytes are returned
// unchanged; text is returned as a string.
func DecodeBody(mode ResponseMode, body []byte) (any, error) {
	switch mode {
	case ModeBytes:
		return body, nil
	case ModeText:
		return string(body), nil
	case ModeJSON:
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, &DecodeError{Mode: mode, Err: err}
		}
		if dec.More() {
			return nil, &DecodeError{Mode: mode, Err: fmt.Errorf("trailing data after JSON value")}
		}
		return v, nil
	default:
		return nil, &DecodeError{Mode: mode, Err: fmt.Errorf("unsupported response mode")}
	}
}
