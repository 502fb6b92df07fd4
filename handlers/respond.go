package handlers

import (
	"errors"
	"net/http"

	"taskturf/services/booking"
	"taskturf/services/matching"
	"taskturf/services/notification"
	"taskturf/services/payment"
	"taskturf/services/user"
	"taskturf/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps typed service failures to transport status
// codes. Anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, notification.ErrNotFound),
		errors.Is(err, matching.ErrWorkerNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, booking.ErrAlreadyResolved),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotCancellable),
		errors.Is(err, booking.ErrNotEditable),
		errors.Is(err, payment.ErrNotPayable),
		errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, matching.ErrWorkerUnavailable):
		utils.JSONError(c, http.StatusUnprocessableEntity, "worker unavailable", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
	case errors.Is(err, user.ErrNotWorker):
		utils.JSONError(c, http.StatusForbidden, "forbidden", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// actorID returns the authenticated user's id set by the auth middleware.
func actorID(c *gin.Context) string {
	return c.GetString("userID")
}

// actorRole returns the authenticated user's role set by the auth middleware.
func actorRole(c *gin.Context) string {
	return c.GetString("role")
}
