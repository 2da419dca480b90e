package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   uint
	AuthorName string
	Text       string
}

type AddCommentUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAddCommentUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorName, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := dto.FromComment(comment)
	return &result, nil
}
