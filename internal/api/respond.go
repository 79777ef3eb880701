package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/usecase"
)

// ErrorResponse is the body used for transport-level failures, such as
// authentication middleware rejections or malformed request bodies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code.
// Serialization failures are logged and the connection is left with
// whatever was already written.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode response body",
			slog.String("error", err.Error()),
			slog.Int("status", status))
	}
}

// RespondWithError writes a transport-level error with a plain message body.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= 500 {
		log := logger.FromContext(r.Context())
		log.Error("server error response",
			slog.Int("status", status),
			slog.String("message", message))
	}
	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// statusForKind maps a failure classification to its HTTP status code.
func statusForKind(kind usecase.FailureKind) int {
	switch kind {
	case usecase.ParametersError:
		return http.StatusBadRequest
	case usecase.ResourceNotFound:
		return http.StatusNotFound
	case usecase.ResourceError:
		return http.StatusUnprocessableEntity
	case usecase.AuthError:
		return http.StatusUnauthorized
	case usecase.SystemError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// WriteResponse translates a use-case response into an HTTP reply. A
// successful response serializes its value with status 200. A failure
// serializes the failure itself, so clients receive both the failure
// type and its message.
func WriteResponse(w http.ResponseWriter, r *http.Request, resp usecase.Response) {
	if resp.Ok() {
		RespondWithJSON(w, r, http.StatusOK, resp.Value())
		return
	}

	failure := resp.Failure()
	status := statusForKind(failure.Kind)
	if status >= 500 {
		log := logger.FromContext(r.Context())
		log.Error("use case failure",
			slog.String("kind", string(failure.Kind)),
			slog.String("message", failure.Message))
	}
	RespondWithJSON(w, r, status, failure)
}
