package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/validation"
	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) nextOccurrence(task domain.Task) *time.Time {
	return h.taskService.NextOccurrence(task, nil)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	skip, limit, err := validation.Pagination(c.GetQuery)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	categoryID, err := validation.QueryUint(c.GetQuery, "category_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	isCompleted, err := validation.QueryBool(c.GetQuery, "is_completed")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), domain.TaskFilter{
		Skip:        skip,
		Limit:       limit,
		CategoryID:  categoryID,
		IsCompleted: isCompleted,
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.nextOccurrence))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.nextOccurrence))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.nextOccurrence))
}

// UpdateTask serves both PATCH and PUT; only the fields present in the body
// change.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}
	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, patch)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.nextOccurrence))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteTask, zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOccurrences expands the task's recurrence rule from ?from (default now)
// up to the optional ?to, at most ?limit occurrences.
func (h *TaskHandler) ListOccurrences(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}

	from, err := validation.QueryDate(c.GetQuery, "from", time.Now().UTC())
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	to, err := validation.QueryTime(c.GetQuery, "to")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	limit, err := validation.QueryInt(c.GetQuery, "limit", 0, 1, 1<<20)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	occurrences, err := h.taskService.ListOccurrences(c.Request.Context(), taskID, from, to, limit)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListOccurrences, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToOccurrences(taskID, occurrences))
}

func (h *TaskHandler) NextOccurrence(c *gin.Context) {
	taskID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return
	}
	after, err := validation.QueryTime(c.GetQuery, "after")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetTask, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.NextOccurrenceResponse{
		TaskID:         taskID,
		NextOccurrence: mapper.FormatTimestampPtr(h.taskService.NextOccurrence(task, after)),
	})
}
