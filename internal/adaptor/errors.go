package adaptor

import (
	"errors"
	"net/http"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service error kinds to status codes. Anything
// without a kind is logged and reported as 500 without leaking details.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := utils.ErrorMessage(err)

	switch {
	case errors.Is(err, utils.ErrBadRequest):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		var fields any
		if f := utils.ErrorFields(err); len(f) > 0 {
			fields = f
		}
		utils.ResponseBadRequest(w, msg, fields)

	case errors.Is(err, utils.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, msg)

	case errors.Is(err, utils.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case errors.Is(err, utils.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, msg)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// currentUser reads the id set by the auth middleware and answers 401 when
// the route was mounted without it.
func currentUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
	}
	return userID, ok
}
