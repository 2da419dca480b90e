package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilla/internal/shared/errors"
)

func TestDeleteCategory_Success(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	category := seedCategory(t, categoryRepo, "Facilities", "facilities")

	uc := NewDeleteCategoryUseCase(categoryRepo, ticketRepo, testLogger())
	err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: category.ID()})

	require.NoError(t, err)
	_, err = categoryRepo.GetByID(context.Background(), category.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteCategory_RefusedWhileTicketsAssigned(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	category := seedCategory(t, categoryRepo, "Facilities", "facilities")
	seedTicket(t, ticketRepo, category)

	uc := NewDeleteCategoryUseCase(categoryRepo, ticketRepo, testLogger())
	err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: category.ID()})

	require.Error(t, err)
	assert.True(t, errors.IsReferentialIntegrityError(err))

	_, err = categoryRepo.GetByID(context.Background(), category.ID())
	assert.NoError(t, err, "refused delete leaves the category in place")
}

func TestDeleteCategory_NotFound(t *testing.T) {
	uc := NewDeleteCategoryUseCase(newMockCategoryRepository(), newMockTicketRepository(), testLogger())

	err := uc.Execute(context.Background(), DeleteCategoryCommand{CategoryID: 7})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
