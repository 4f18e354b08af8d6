package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"registrar/pkg/serrors"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return serrors.Invalid(typeErr.Field, "must be a %s", typeErr.Type.Kind())
		case errors.As(err, &maxErr):
			return serrors.With(serrors.ErrBadRequest, "request body too large")
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON body")
		}
	}

	return nil
}
