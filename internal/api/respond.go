package api

import (
	"encoding/json"
	"net/http"

	"github.com/plotgrid/plotgrid/pkg/errors"
)

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a pipeline error to an HTTP status via its error code.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{
		Error: errorDetail{
			Code:    string(code),
			Message: errors.UserMessage(err),
		},
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeEmptyDataset,
		errors.ErrCodeInvalidValue,
		errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDataset:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
