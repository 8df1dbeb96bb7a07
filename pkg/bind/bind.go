// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/pkg/validate"
)

// JSON decodes r.Body into dest and validates it. The body is capped at
// MAX_BODY_BYTES and must hold exactly one JSON value with no unknown fields.
// It returns (errs, nil) on validation failures and (nil, err) when the body
// is malformed or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return nil, errors.New("request body is empty")
		default:
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}
	if dec.More() {
		return nil, errors.New("invalid JSON: unexpected data after the first value")
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
