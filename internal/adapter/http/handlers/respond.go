package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/middleware"
	"taskplanner/internal/core/domain"
	"taskplanner/pkg/apierrors"
)

func respondError(c *gin.Context, status int, msgKey string) {
	c.AbortWithStatusJSON(
		status,
		apierrors.CreateError(status, msgKey, middleware.GetLang(c)).WithRequestID(middleware.GetRequestID(c)),
	)
}

// respondServiceError maps domain errors to 400/404 and logs anything else
// before answering 500 with failKey.
func respondServiceError(c *gin.Context, err error, failKey string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrSubTaskNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgSubTaskNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	case errors.Is(err, domain.ErrTimeBlockNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTimeBlockNotFound)
	case errors.Is(err, domain.ErrDefaultCategoryDelete):
		respondError(c, http.StatusBadRequest, apierrors.MsgDefaultCategoryDelete)
	case errors.Is(err, domain.ErrInvalidTimeRange):
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTimeRange)
	default:
		fields = append(fields, zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		zap.L().Error(apierrors.GetTransErrorMsg(failKey, "en"), fields...)
		respondError(c, http.StatusInternalServerError, failKey)
	}
}

// bindJSON validates the body into req and also returns its raw fields, so
// PATCH handlers can tell an explicit null from an absent field.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}
