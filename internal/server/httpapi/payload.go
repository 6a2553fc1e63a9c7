package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gsbevilaqua83/private-rest-api/internal/server/services"
)

const maxBodyBytes = 1 << 20

// decodePayload reads the request body as a flat JSON object. A missing or
// malformed body yields an empty payload; the services then report the
// missing keys. Non-string values are kept as their JSON text.
func decodePayload(w http.ResponseWriter, r *http.Request) services.Payload {
	p := services.Payload{}
	if r.Body == nil {
		return p
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return p
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return p
	}

	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			p[k] = s
			continue
		}
		p[k] = string(bytes.TrimSpace(v))
	}
	return p
}
