package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

var ErrInvalidCategoryPayload = errors.New("invalid category payload")

func BuildCreateCategoryInput(req dto.CreateCategoryRequest) (domain.CreateCategoryInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateCategoryInput{}, ErrInvalidCategoryPayload
	}

	input := domain.CreateCategoryInput{
		Name:      name,
		Icon:      req.Icon,
		IsDefault: req.IsDefault,
	}
	if req.Color != nil {
		input.Color = *req.Color
	}
	return input, nil
}

func BuildCategoryPatch(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.CategoryPatch, error) {
	if !hasAnyJSONField(raw, "name", "color", "icon", "is_default") {
		return domain.CategoryPatch{}, ErrInvalidCategoryPayload
	}
	if (hasJSONField(raw, "name") && req.Name == nil) ||
		(hasJSONField(raw, "color") && req.Color == nil) ||
		(hasJSONField(raw, "is_default") && req.IsDefault == nil) {
		return domain.CategoryPatch{}, ErrInvalidCategoryPayload
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.CategoryPatch{}, ErrInvalidCategoryPayload
		}
		name = &value
	}

	iconSet, ok := nullableSet(raw, "icon", req.Icon != nil)
	if !ok {
		return domain.CategoryPatch{}, ErrInvalidCategoryPayload
	}

	return domain.CategoryPatch{
		Name:      name,
		Color:     req.Color,
		Icon:      req.Icon,
		IconSet:   iconSet,
		IsDefault: req.IsDefault,
	}, nil
}
