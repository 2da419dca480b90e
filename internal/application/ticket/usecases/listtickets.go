package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
	"hilla/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status       string
	Priority     string
	CategorySlug string
	Query        string
	Sort         string
}

// ListTicketsUseCase builds the queue view: a filtered, sorted
// projection over the ticket snapshot. The underlying store is never
// mutated.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	averages, err := uc.ticketRepo.AverageRatings(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load average ratings", "error", err)
		return nil, err
	}

	queue := ticket.BuildQueue(tickets, averages, ticket.QueueFilter{
		Status:       query.Status,
		Priority:     query.Priority,
		CategorySlug: query.CategorySlug,
		Query:        query.Query,
	}, ticket.SortMode(query.Sort))

	result := make([]dto.TicketDTO, len(queue))
	for i, t := range queue {
		var avg *float64
		if v, ok := averages[t.ID()]; ok {
			rounded := ticket.Round2(v)
			avg = &rounded
		}
		result[i] = dto.FromTicket(t, avg)
	}

	return result, nil
}
