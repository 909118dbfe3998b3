package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/validation"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

type ProductivityHandler struct {
	productivityService ports.ProductivityService
	clock               ports.Clock
}

func NewProductivityHandler(productivityService ports.ProductivityService, clock ports.Clock) *ProductivityHandler {
	return &ProductivityHandler{productivityService: productivityService, clock: clock}
}

func (h *ProductivityHandler) date(c *gin.Context) (time.Time, bool) {
	date, err := validation.QueryDate(c.GetQuery, "date", h.clock.Now())
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return time.Time{}, false
	}
	return date, true
}

func (h *ProductivityHandler) GetSummary(c *gin.Context) {
	date, ok := h.date(c)
	if !ok {
		return
	}

	summary, err := h.productivityService.GetSummary(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailProductivitySummary, zap.Time("date", date))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProductivitySummary(summary))
}

func (h *ProductivityHandler) GetCategorySummary(c *gin.Context) {
	categoryID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}
	date, ok := h.date(c)
	if !ok {
		return
	}

	entry, err := h.productivityService.GetCategorySummary(c.Request.Context(), categoryID, date)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailProductivitySummary, zap.Uint64("category_id", categoryID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryProductivity(entry))
}

// UpdateLogs persists the summary of ?date and returns it.
func (h *ProductivityHandler) UpdateLogs(c *gin.Context) {
	date, ok := h.date(c)
	if !ok {
		return
	}

	summary, err := h.productivityService.UpdateLogs(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateProductivityLogs, zap.Time("date", date))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProductivitySummary(summary))
}

// ListLogs returns stored logs between ?from and ?to, both defaulting to
// today.
func (h *ProductivityHandler) ListLogs(c *gin.Context) {
	now := h.clock.Now()
	from, err := validation.QueryDate(c.GetQuery, "from", now)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}
	to, err := validation.QueryDate(c.GetQuery, "to", now)
	if err != nil || to.Before(from) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	logs, err := h.productivityService.ListLogs(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListProductivityLogs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProductivityLogItems(logs))
}
