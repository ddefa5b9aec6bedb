package dto

import (
	"time"

	"quickdesk/internal/domain/category"
)

type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCategoryDTO(c *category.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToCategoryDTOList(categories []*category.Category) []*CategoryDTO {
	result := make([]*CategoryDTO, 0, len(categories))
	for _, c := range categories {
		result = append(result, ToCategoryDTO(c))
	}
	return result
}
