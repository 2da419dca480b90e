package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketResult struct {
	Ticket   dto.TicketDTO    `json:"ticket"`
	Comments []dto.CommentDTO `json:"comments"`
	Ratings  []dto.RatingDTO  `json:"ratings"`
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	renderer   MarkdownRenderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	renderer MarkdownRenderer,
	log logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	ratings, err := uc.ticketRepo.RatingsByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ratings", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	comments, err := uc.ticketRepo.CommentsByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	ticketDTO := dto.FromTicket(t, ticket.AverageScore(ratings))

	if t.IsAnswered() && uc.renderer != nil {
		html, err := uc.renderer.ToHTMLSanitized(t.Answer())
		if err != nil {
			// Rendering is cosmetic; the raw answer is still returned.
			uc.logger.Warnw("failed to render answer", "ticket_id", t.ID(), "error", err)
		} else {
			ticketDTO.AnswerHTML = html
		}
	}

	commentDTOs := make([]dto.CommentDTO, len(comments))
	for i, c := range comments {
		commentDTOs[i] = dto.FromComment(c)
	}

	ratingDTOs := make([]dto.RatingDTO, len(ratings))
	for i, r := range ratings {
		ratingDTOs[i] = dto.FromRating(r)
	}

	return &GetTicketResult{
		Ticket:   ticketDTO,
		Comments: commentDTOs,
		Ratings:  ratingDTOs,
	}, nil
}
