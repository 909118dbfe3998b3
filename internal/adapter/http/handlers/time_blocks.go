package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/validation"
	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

type TimeBlockHandler struct {
	timeBlockService ports.TimeBlockService
}

func NewTimeBlockHandler(timeBlockService ports.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{timeBlockService: timeBlockService}
}

func (h *TimeBlockHandler) ListTimeBlocks(c *gin.Context) {
	skip, limit, err := validation.Pagination(c.GetQuery)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	taskID, err := validation.QueryUint(c.GetQuery, "task_id")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	startDate, err := validation.QueryTime(c.GetQuery, "start_date")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	endDate, err := validation.QueryTime(c.GetQuery, "end_date")
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	blocks, err := h.timeBlockService.ListTimeBlocks(c.Request.Context(), domain.TimeBlockFilter{
		Skip:      skip,
		Limit:     limit,
		TaskID:    taskID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListTimeBlocks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItems(blocks))
}

func (h *TimeBlockHandler) GetTimeBlock(c *gin.Context) {
	blockID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	block, err := h.timeBlockService.GetTimeBlock(c.Request.Context(), blockID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetTimeBlock, zap.Uint64("time_block_id", blockID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItem(block))
}

func (h *TimeBlockHandler) CreateTimeBlock(c *gin.Context) {
	var req dto.CreateTimeBlockRequest
	if _, err := bindJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}
	input, err := validation.BuildCreateTimeBlockInput(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	block, err := h.timeBlockService.CreateTimeBlock(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTimeBlock)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTimeBlockItem(block))
}

func (h *TimeBlockHandler) UpdateTimeBlock(c *gin.Context) {
	blockID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	var req dto.UpdateTimeBlockRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}
	patch, err := validation.BuildTimeBlockPatch(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockPayload)
		return
	}

	block, err := h.timeBlockService.UpdateTimeBlock(c.Request.Context(), blockID, patch)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTimeBlock, zap.Uint64("time_block_id", blockID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeBlockItem(block))
}

func (h *TimeBlockHandler) DeleteTimeBlock(c *gin.Context) {
	blockID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeBlockID)
		return
	}

	if err := h.timeBlockService.DeleteTimeBlock(c.Request.Context(), blockID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteTimeBlock, zap.Uint64("time_block_id", blockID))
		return
	}

	c.Status(http.StatusNoContent)
}
