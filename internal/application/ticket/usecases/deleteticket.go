package usecases

import (
	"context"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket together with its comments and
// ratings.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
