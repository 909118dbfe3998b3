package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/validation"
	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

// SyncHandler serves offline clients the records changed after
// ?modified_since, or everything when it is absent.
type SyncHandler struct {
	syncService ports.SyncService
	taskService ports.TaskService
}

func NewSyncHandler(syncService ports.SyncService, taskService ports.TaskService) *SyncHandler {
	return &SyncHandler{syncService: syncService, taskService: taskService}
}

func (h *SyncHandler) Tasks(c *gin.Context) {
	since, err := validation.QueryTime(c.GetQuery, "modified_since")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	tasks, err := h.syncService.Tasks(c.Request.Context(), since)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSync)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, func(task domain.Task) *time.Time {
		return h.taskService.NextOccurrence(task, nil)
	}))
}

func (h *SyncHandler) Categories(c *gin.Context) {
	since, err := validation.QueryTime(c.GetQuery, "modified_since")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	categories, err := h.syncService.Categories(c.Request.Context(), since)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSync)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *SyncHandler) TimeBlocks(c *gin.Context) {
	since, err := validation.QueryTime(c.GetQuery, "modified_since")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	blocks, err := h.syncService.TimeBlocks(c.Request.Context(), since)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSync)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItems(blocks))
}
