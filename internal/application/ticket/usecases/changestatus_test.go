package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilla/internal/domain/ticket"
	vo "hilla/internal/domain/ticket/valueobjects"
	"hilla/internal/shared/errors"
)

func seedTicket(t *testing.T, repo *mockTicketRepository, category *ticket.Category) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.NewTicketInput{
		Category: category,
		Type:     "question",
		Priority: vo.PriorityMedium,
		Name:     "Dana Rivera",
		Email:    "dana@campus.edu",
		Subject:  "VPN keeps dropping",
		Message:  "The VPN disconnects every few minutes from the dorms.",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestChangeStatus_Success(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	category := seedCategory(t, categoryRepo, "IT & Network", "it-network")
	tk := seedTicket(t, ticketRepo, category)

	uc := NewChangeStatusUseCase(ticketRepo, testLogger())
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  tk.ID(),
		NewStatus: "closed",
	})

	require.NoError(t, err)
	assert.Equal(t, "closed", result.Status)
}

func TestChangeStatus_Reopen(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	category := seedCategory(t, categoryRepo, "IT & Network", "it-network")
	tk := seedTicket(t, ticketRepo, category)

	uc := NewChangeStatusUseCase(ticketRepo, testLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: tk.ID(), NewStatus: "closed"})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: tk.ID(), NewStatus: "open"})
	require.NoError(t, err)
	assert.Equal(t, "open", result.Status)
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	category := seedCategory(t, categoryRepo, "IT & Network", "it-network")
	tk := seedTicket(t, ticketRepo, category)

	uc := NewChangeStatusUseCase(ticketRepo, testLogger())
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  tk.ID(),
		NewStatus: "archived",
	})

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeInvalidTransition, appErr.Type)

	stored, err := ticketRepo.GetByID(context.Background(), tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "open", stored.Status().String(), "rejected change must not touch the ticket")
}

func TestChangeStatus_TicketNotFound(t *testing.T) {
	uc := NewChangeStatusUseCase(newMockTicketRepository(), testLogger())

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 99, NewStatus: "closed"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
