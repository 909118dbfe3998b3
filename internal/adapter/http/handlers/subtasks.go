package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/validation"
	"taskplanner/pkg/apierrors"
)

func (h *TaskHandler) ListSubTasks(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	subtasks, err := h.taskService.ListSubTasks(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListSubtasks, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubTaskItems(subtasks))
}

func (h *TaskHandler) CreateSubTask(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.CreateSubTaskRequest
	if _, err := bindJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSubTaskPayload)
		return
	}
	input, err := validation.BuildCreateSubTaskInput(taskID, req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSubTaskPayload)
		return
	}

	subtask, err := h.taskService.CreateSubTask(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateSubTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubTaskItem(subtask))
}

func (h *TaskHandler) UpdateSubTask(c *gin.Context) {
	subtaskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSubTaskID)
		return
	}

	var req dto.UpdateSubTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSubTaskPayload)
		return
	}
	patch, err := validation.BuildSubTaskPatch(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSubTaskPayload)
		return
	}

	subtask, err := h.taskService.UpdateSubTask(c.Request.Context(), subtaskID, patch)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateSubTask, zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubTaskItem(subtask))
}

func (h *TaskHandler) DeleteSubTask(c *gin.Context) {
	subtaskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSubTaskID)
		return
	}

	if err := h.taskService.DeleteSubTask(c.Request.Context(), subtaskID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteSubTask, zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.Status(http.StatusNoContent)
}
