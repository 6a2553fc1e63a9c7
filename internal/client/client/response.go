package client

import (
	"bytes"
	"encoding/json"
)

// Response is a JSON document returned by the server.
type Response json.RawMessage

// Has reports whether the response is an object carrying key.
func (r Response) Has(key string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(r, &obj); err != nil {
		return false
	}
	_, ok := obj[key]
	return ok
}

// Indent renders the response with sorted object keys and the given
// indentation. Numbers keep their original text.
func (r Response) Indent(indent string) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(r))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func (r Response) String() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, r); err != nil {
		return string(r)
	}
	return buf.String()
}
