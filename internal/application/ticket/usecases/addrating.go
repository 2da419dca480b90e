package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type AddRatingCommand struct {
	TicketID  uint
	Score     int
	RaterName string
	Comment   string
}

type AddRatingUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAddRatingUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *AddRatingUseCase {
	return &AddRatingUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *AddRatingUseCase) Execute(ctx context.Context, cmd AddRatingCommand) (*dto.RatingDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	rating, err := ticket.NewRating(cmd.TicketID, cmd.Score, cmd.RaterName, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveRating(ctx, rating); err != nil {
		uc.logger.Errorw("failed to save rating", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := dto.FromRating(rating)
	return &result, nil
}
