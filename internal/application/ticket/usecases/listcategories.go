package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	"hilla/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo ticket.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo ticket.CategoryRepository, log logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       log,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	result := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.FromCategory(c))
	}
	return result, nil
}
