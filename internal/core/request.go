// AngelaMos | 2026
// request.go

package core

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads and validates a request body. On failure it writes the
// error response and returns false.
func DecodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	v *validator.Validate,
	dst any,
) bool {
	if err := decodeBody(w, r, dst); err != nil {
		BadRequest(w, "invalid request body")
		return false
	}

	if err := v.Struct(dst); err != nil {
		JSONError(w, ValidationError(FormatValidationError(err)))
		return false
	}

	return true
}

// DecodeOptionalJSON is DecodeJSON for bodies that may be absent. An empty
// body leaves dst untouched. Nothing is validated.
func DecodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeBody(w, r, dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	BadRequest(w, "invalid request body")
	return false
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
