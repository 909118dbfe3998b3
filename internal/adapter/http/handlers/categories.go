package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/adapter/http/mapper"
	"taskplanner/internal/adapter/http/validation"
	"taskplanner/internal/core/ports"
	"taskplanner/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	skip, limit, err := validation.Pagination(c.GetQuery)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidQuery)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), skip, limit)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListCategories)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetCategory, zap.Uint64("category_id", categoryID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if _, err := bindJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}
	input, err := validation.BuildCreateCategoryInput(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateCategory)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}

	var req dto.UpdateCategoryRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}
	patch, err := validation.BuildCategoryPatch(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, patch)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateCategory, zap.Uint64("category_id", categoryID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteCategory, zap.Uint64("category_id", categoryID))
		return
	}

	c.Status(http.StatusNoContent)
}
