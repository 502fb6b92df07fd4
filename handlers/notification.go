package handlers

import (
	"net/http"
	"strconv"

	"taskturf/models"
	"taskturf/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the pull-based notification inbox.
type NotificationHandler struct {
	NotificationSvc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationSvc: svc}
}

// ListHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	notifications, err := h.NotificationSvc.List(c.Request.Context(), actorID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// UnreadCountHandler returns the caller's unread count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	count, err := h.NotificationSvc.UnreadCount(c.Request.Context(), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkReadHandler acknowledges one notification. Re-acknowledging is a
// no-op success.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := h.NotificationSvc.MarkRead(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

// MarkAllReadHandler acknowledges every unread notification.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	updated, err := h.NotificationSvc.MarkAllRead(c.Request.Context(), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": updated})
}
