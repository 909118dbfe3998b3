package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

type NotificationHandler struct {
	reminderService ports.ReminderService
}

func NewNotificationHandler(reminderService ports.ReminderService) *NotificationHandler {
	return &NotificationHandler{reminderService: reminderService}
}

func (h *NotificationHandler) NextReminder(c *gin.Context) {
	task, err := h.reminderService.NextReminder(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailNextReminder)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNextReminder(task))
}
