package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	vo "hilla/internal/domain/ticket/valueobjects"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

// UpdateTicketCommand carries partial updates; nil means unchanged.
type UpdateTicketCommand struct {
	TicketID     uint
	CategorySlug *string
	Type         *string
	Priority     *string
	Subject      *string
	Message      *string
	Answer       *string
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo ticket.CategoryRepository
	notifier     AnswerNotifier
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo ticket.CategoryRepository,
	notifier AnswerNotifier,
	log logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		notifier:     notifier,
		logger:       log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	wasAnswered := t.IsAnswered()

	in := ticket.UpdateInput{
		Subject: cmd.Subject,
		Message: cmd.Message,
		Answer:  cmd.Answer,
	}

	if cmd.CategorySlug != nil {
		category, err := uc.categoryRepo.GetBySlug(ctx, *cmd.CategorySlug)
		if err != nil {
			return nil, errors.NewValidationError("category does not exist", *cmd.CategorySlug)
		}
		in.Category = category
	}
	if cmd.Type != nil {
		tt := vo.TicketType(*cmd.Type)
		in.Type = &tt
	}
	if cmd.Priority != nil {
		p := vo.Priority(*cmd.Priority)
		in.Priority = &p
	}

	if err := t.Update(in); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	// Notify the submitter the first time an answer lands. Best
	// effort: a delivery failure never fails the update.
	if !wasAnswered && t.IsAnswered() && t.Email() != "" && uc.notifier != nil {
		if err := uc.notifier.NotifyAnswerPosted(ctx, t.Email(), t.Subject(), t.Answer()); err != nil {
			uc.logger.Warnw("failed to send answer notification",
				"ticket_id", t.ID(),
				"error", err)
		}
	}

	ratings, err := uc.ticketRepo.RatingsByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := dto.FromTicket(t, ticket.AverageScore(ratings))
	return &result, nil
}
