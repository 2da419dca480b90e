package usecases

import (
	"context"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/logger"
)

// GetDashboardStatsUseCase aggregates the whole ticket corpus inside a
// single read transaction. A short-lived cache sits in front since the
// dashboard polls this frequently; cache errors degrade to a recompute.
type GetDashboardStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	snapshot   SnapshotRunner
	cache      StatsCache
	logger     logger.Interface
}

func NewGetDashboardStatsUseCase(
	ticketRepo ticket.TicketRepository,
	snapshot SnapshotRunner,
	cache StatsCache,
	log logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo: ticketRepo,
		snapshot:   snapshot,
		cache:      cache,
		logger:     log,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*ticket.DashboardStats, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warnw("stats cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	var (
		tickets []*ticket.Ticket
		ratings []*ticket.Rating
	)
	err := uc.snapshot.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tickets, err = uc.ticketRepo.List(txCtx)
		if err != nil {
			return err
		}
		ratings, err = uc.ticketRepo.ListRatings(txCtx)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to load stats snapshot", "error", err)
		return nil, err
	}

	stats := ticket.ComputeDashboardStats(tickets, ratings)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stats); err != nil {
			uc.logger.Warnw("stats cache write failed", "error", err)
		}
	}

	return stats, nil
}
