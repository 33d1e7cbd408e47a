package api

import (
	"encoding/json"
	"fmt"
)

// CodeOK is the application-level success code. The server sets it
// independently of the HTTP status, so callers must always check it.
const CodeOK = 200

// Envelope is the uniform response wrapper returned by every endpoint.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK reports application-level success.
func (e *Envelope) OK() bool { return e.Code == CodeOK }

// Decode unmarshals the envelope payload into v. Decoding an absent payload
// is an error so callers never silently work with zero values.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope has no data")
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}
