package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusreg/lostfound/internal/common"
)

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single place service errors become HTTP responses.
// Anything unrecognized is logged with detail and answered with a generic
// 500 so internals never leak to the client.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrDuplicateUser),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidFileType),
		errors.Is(err, common.ErrFileTooLarge):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: capitalized(err)})

	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusForbidden, errorBody{Message: "Token invalid"})

	case errors.Is(err, common.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Message: "Admin access required"})

	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Not found"})

	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Server error."})
	}
}

// capitalized renders a sentinel error as a user-facing message.
func capitalized(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	b := []byte(msg)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b) + "."
}
