// Package json wraps encoding/json with the encoder settings used throughout the server.
package json

import (
	"bytes"
	"encoding/json"
)

// Marshal is like json.Marshal, but it doesn't escape HTML characters
// and it doesn't append a newline.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Unmarshal is a wrapper for json.Unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
