package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/haulledger/backend/internal/domain"
	"github.com/haulledger/backend/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err, domain.ErrValidation)}}
}

// conflictBody returns an ErrorResponse for an operation the resource's
// current state forbids (ended trip, seed crossing, vehicle in use).
func conflictBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: unwrapMessage(err, domain.ErrConflict)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// unwrapMessage extracts the human-readable part that follows the sentinel.
// e.g. "service.TripService.Start: validation error: state is required" → "state is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return msg
}

// WriteError writes an ErrorResponse with the given status. It is used by
// code outside the strict handler: auth middleware, param binding, websocket.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}

// StrictOptions returns the error handlers used by the strict server.
// Malformed bodies become 400 validation errors; unexpected service errors are
// logged and become an opaque 500.
func StrictOptions(logger *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"precondition", errors.Is(err, domain.ErrPrecondition),
				"error", err,
			)
			WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		},
	}
}

// ParamErrorHandler reports malformed path and query parameters as 400s.
func ParamErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
}
