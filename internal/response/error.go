package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/expense-dashboard/internal/errs"
	"github.com/GregMSThompson/expense-dashboard/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

// HandleError maps typed errors, wrapped or not, onto a status and code.
// Anything unrecognised is logged and hidden behind a 500.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		notFound    *errs.NotFoundError
		exists      *errs.AlreadyExistsError
		invalid     *errs.ValidationError
		unavailable *errs.UnavailableError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		h.WriteError(w, r, http.StatusNotFound, errs.CodeNotFound, notFound.Message)

	case errors.As(err, &exists):
		log.Warn("resource already exists", "error", exists.Message)
		h.WriteError(w, r, http.StatusConflict, errs.CodeAlreadyExists, exists.Message)

	case errors.As(err, &invalid):
		log.Warn("validation failed", "error", invalid.Message)
		h.WriteError(w, r, http.StatusBadRequest, errs.CodeInvalidInput, invalid.Message)

	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		log.Warn("malformed request body", "error", err)
		h.WriteError(w, r, http.StatusBadRequest, errs.CodeInvalidInput, "Request body is not valid JSON")

	case errors.As(err, &unavailable):
		log.Warn("dependency unavailable", "error", unavailable.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, errs.CodeUnavailable,
			"Service temporarily unavailable")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, errs.CodeInternal,
			"An unexpected error occurred")
	}
}
