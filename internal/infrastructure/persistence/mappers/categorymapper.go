package mappers

import (
	"hilla/internal/domain/ticket"
	"hilla/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between category domain entities and persistence models.
type CategoryMapper interface {
	ToModel(c *ticket.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) (*ticket.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(c *ticket.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Slug:      c.Slug(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*ticket.Category, error) {
	return ticket.ReconstructCategory(
		model.ID,
		model.Name,
		model.Slug,
		millisToTime(model.CreatedAt),
	)
}
