package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hilla/internal/domain/ticket"
	"hilla/internal/infrastructure/persistence/mappers"
	"hilla/internal/infrastructure/persistence/models"
	"hilla/internal/shared/db"
	"hilla/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

// Save inserts the category. The unique index on slug arbitrates
// between concurrent writers; a duplicate surfaces unchanged so the
// caller can retry with the next candidate.
func (r *CategoryRepository) Save(ctx context.Context, c *ticket.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to save category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.CategoryModel{}, categoryID).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID uint) (*ticket.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*ticket.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*ticket.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.CategoryModel
	if err := tx.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*ticket.Category, 0, len(categoryModels))
	for i := range categoryModels {
		c, err := r.mapper.ToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}
