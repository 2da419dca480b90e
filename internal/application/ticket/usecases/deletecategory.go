package usecases

import (
	"context"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID uint
}

type DeleteCategoryUseCase struct {
	categoryRepo ticket.CategoryRepository
	ticketRepo   ticket.TicketRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo ticket.CategoryRepository,
	ticketRepo ticket.TicketRepository,
	log logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		ticketRepo:   ticketRepo,
		logger:       log,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return errors.NewNotFoundError("category not found")
	}

	count, err := uc.ticketRepo.CountByCategoryID(ctx, cmd.CategoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewReferentialIntegrityError("category still has tickets assigned")
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "category_id", cmd.CategoryID, "error", err)
		return err
	}

	uc.logger.Infow("category deleted", "category_id", cmd.CategoryID)
	return nil
}
