package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

// maxSlugAttempts bounds the collision retry loop. Beyond this many
// same-named categories a conflict is returned instead.
const maxSlugAttempts = 20

type CreateCategoryCommand struct {
	Name string
}

type CreateCategoryUseCase struct {
	categoryRepo ticket.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo ticket.CategoryRepository, log logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       log,
	}
}

// Execute creates a category, deriving a unique slug from the name.
// Collisions are resolved by retrying with a numeric suffix and
// letting the unique index arbitrate concurrent writers.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	category, err := ticket.NewCategory(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	base := ticket.Slugify(cmd.Name)
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		if err := category.SetSlug(ticket.SlugCandidate(base, attempt)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		err = uc.categoryRepo.Save(ctx, category)
		if err == nil {
			uc.logger.Infow("category created",
				"category_id", category.ID(),
				"slug", category.Slug())
			result := dto.FromCategory(category)
			return &result, nil
		}
		if !errors.IsDuplicateError(err) {
			uc.logger.Errorw("failed to save category", "name", cmd.Name, "error", err)
			return nil, err
		}
	}

	return nil, errors.NewConflictError("could not allocate a unique slug for category")
}
