package adaptor

import (
	"net/http"
	"strings"

	"corfumania-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a service error onto an HTTP status by its message.
// Services return plain errors; sentinel matching on the text keeps the
// mapping in one place.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "cannot delete"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "only the creator"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "exceeds"),
		strings.Contains(errMsg, "must"),
		strings.Contains(errMsg, "is full"),
		strings.Contains(errMsg, "already refunded"),
		strings.Contains(errMsg, "not pending"),
		strings.Contains(errMsg, "unknown report kind"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// requireUserID pulls the authenticated user out of the request context. The
// auth middleware guarantees it, so a miss means a wiring bug.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return "", false
	}
	return userID.String(), true
}
