package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"safezone/pkg/e"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON document from the request body into dst.
// Malformed, oversized or trailing input is reported as ErrInvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", e.ErrInvalidInput)
		}
		return fmt.Errorf("%w: %w", e.ErrInvalidInput, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON body", e.ErrInvalidInput)
	}
	return nil
}
