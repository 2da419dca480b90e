package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
)

func seedCategory(t *testing.T, repo *mockCategoryRepository, name, slug string) *ticket.Category {
	t.Helper()
	c, err := ticket.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, c.SetSlug(slug))
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func validCreateCommand() CreateTicketCommand {
	return CreateTicketCommand{
		CategorySlug: "it-network",
		Type:         "question",
		Name:         "Dana Rivera",
		Email:        "dana@campus.edu",
		Subject:      "VPN keeps dropping",
		Message:      "The VPN disconnects every few minutes from the dorms.",
	}
}

func TestCreateTicket_Success(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	seedCategory(t, categoryRepo, "IT & Network", "it-network")

	uc := NewCreateTicketUseCase(ticketRepo, categoryRepo, testLogger())
	result, err := uc.Execute(context.Background(), validCreateCommand())

	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	assert.Equal(t, "it-network", result.Category)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "medium", result.Priority, "priority defaults when omitted")
	assert.Equal(t, "Dana Rivera", result.Name)
	assert.False(t, result.IsAnswered)
	assert.Nil(t, result.AverageRating)
}

func TestCreateTicket_AnonymousDropsIdentity(t *testing.T) {
	ticketRepo := newMockTicketRepository()
	categoryRepo := newMockCategoryRepository()
	seedCategory(t, categoryRepo, "IT & Network", "it-network")

	cmd := validCreateCommand()
	cmd.IsAnonymous = true

	uc := NewCreateTicketUseCase(ticketRepo, categoryRepo, testLogger())
	result, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.True(t, result.IsAnonymous)
	assert.Empty(t, result.Name, "submitted name must not be stored")
	assert.Empty(t, result.Email, "submitted email must not be stored")
}

func TestCreateTicket_UnknownCategory(t *testing.T) {
	uc := NewCreateTicketUseCase(newMockTicketRepository(), newMockCategoryRepository(), testLogger())

	cmd := validCreateCommand()
	cmd.CategorySlug = "no-such-category"

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicket_Validation(t *testing.T) {
	categoryRepo := newMockCategoryRepository()
	seedCategory(t, categoryRepo, "IT & Network", "it-network")
	uc := NewCreateTicketUseCase(newMockTicketRepository(), categoryRepo, testLogger())

	tests := []struct {
		name   string
		mutate func(cmd *CreateTicketCommand)
	}{
		{"missing subject", func(cmd *CreateTicketCommand) { cmd.Subject = " " }},
		{"missing message", func(cmd *CreateTicketCommand) { cmd.Message = "" }},
		{"invalid type", func(cmd *CreateTicketCommand) { cmd.Type = "rant" }},
		{"invalid priority", func(cmd *CreateTicketCommand) { cmd.Priority = "urgent" }},
		{"named submitter without email", func(cmd *CreateTicketCommand) { cmd.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateCommand()
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
