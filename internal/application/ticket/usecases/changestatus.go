package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	vo "hilla/internal/domain/ticket/valueobjects"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		// Rejected before any read so no mutation can occur.
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", oldStatus.String(),
		"to", newStatus.String())

	result := dto.FromTicket(t, nil)
	return &result, nil
}
