package mappers

import (
	"quickdesk/internal/domain/category"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/biztime"
)

type CategoryMapper interface {
	ToModel(c *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: biztime.ToMilli(c.CreatedAt()),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(model.ID, model.Name, biztime.FromMilli(model.CreatedAt))
}
