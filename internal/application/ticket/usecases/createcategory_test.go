package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
)

func TestCreateCategory_AssignsBaseSlug(t *testing.T) {
	repo := newMockCategoryRepository()
	uc := NewCreateCategoryUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Student Services"})

	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	assert.Equal(t, "Student Services", result.Name)
	assert.Equal(t, "student-services", result.Slug)
}

func TestCreateCategory_CollisionAppendsSuffix(t *testing.T) {
	repo := newMockCategoryRepository()
	seedCategory(t, repo, "Library", "library")

	uc := NewCreateCategoryUseCase(repo, testLogger())

	second, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "LIBRARY"})
	require.NoError(t, err)
	assert.Equal(t, "library-2", second.Slug)

	third, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Library!"})
	require.NoError(t, err)
	assert.Equal(t, "library-3", third.Slug)
}

func TestCreateCategory_ExhaustionConflict(t *testing.T) {
	repo := newMockCategoryRepository()
	var attempts int
	repo.saveFn = func(ctx context.Context, c *ticket.Category) error {
		attempts++
		return fmt.Errorf("UNIQUE constraint failed: ticket_categories.slug")
	}

	uc := NewCreateCategoryUseCase(repo, testLogger())
	_, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Library"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, maxSlugAttempts, attempts, "every candidate is tried before giving up")
}

func TestCreateCategory_RepoErrorPassedThrough(t *testing.T) {
	repo := newMockCategoryRepository()
	repoErr := fmt.Errorf("disk I/O error")
	repo.saveFn = func(ctx context.Context, c *ticket.Category) error {
		return repoErr
	}

	uc := NewCreateCategoryUseCase(repo, testLogger())
	_, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: "Library"})

	assert.ErrorIs(t, err, repoErr)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	uc := NewCreateCategoryUseCase(newMockCategoryRepository(), testLogger())

	_, err := uc.Execute(context.Background(), CreateCategoryCommand{Name: ""})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
