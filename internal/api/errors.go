package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/pkg/httputil"
)

var errorCodes = []struct {
	err  error
	code int
}{
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrInvalidCoordinator, http.StatusBadRequest},
	{errorvalues.ErrUserExists, http.StatusConflict},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden},
	{errorvalues.ErrWrongOwner, http.StatusForbidden},
	{errorvalues.ErrRoleNotAllowed, http.StatusForbidden},
	{errorvalues.ErrUserNotFound, http.StatusNotFound},
	{errorvalues.ErrSupportNotFound, http.StatusNotFound},
	{errorvalues.ErrTaskNotFound, http.StatusNotFound},
	{errorvalues.ErrPhotoNotFound, http.StatusNotFound},
	{errorvalues.ErrResetTokenNotFound, http.StatusGone},
	{errorvalues.ErrFeedUnavailable, http.StatusServiceUnavailable},
}

func statusFor(err error) int {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status and user message of err.
// Field errors are passed to the client only for validation failures.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code := statusFor(err)
	var details error
	switch {
	case code == http.StatusInternalServerError:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
	case errors.Is(err, errorvalues.ErrValidation):
		details = err
		logger.Warn(op+" error: invalid input", slog.String("error", err.Error()))
	default:
		logger.Warn(op+" error", slog.String("error", err.Error()))
	}
	httputil.WriteErrorResponse(w, code, errorvalues.UserMessage(err), details)
}
