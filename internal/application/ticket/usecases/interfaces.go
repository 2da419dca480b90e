package usecases

import (
	"context"

	"hilla/internal/application/ticket/dto"
	"hilla/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type AddRatingExecutor interface {
	Execute(ctx context.Context, cmd AddRatingCommand) (*dto.RatingDTO, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) error
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context) (*ticket.DashboardStats, error)
}

// AnswerNotifier delivers a best-effort notification to the submitter
// when a staff answer is posted. Failures must not fail the write.
type AnswerNotifier interface {
	NotifyAnswerPosted(ctx context.Context, email, subject, answer string) error
}

// MarkdownRenderer converts a staff answer to sanitized HTML for the
// detail endpoint.
type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// SnapshotRunner runs fn inside one read transaction so aggregations
// see a single consistent snapshot.
type SnapshotRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsCache caches the dashboard aggregate for a short TTL. A miss
// returns (nil, nil).
type StatsCache interface {
	Get(ctx context.Context) (*ticket.DashboardStats, error)
	Set(ctx context.Context, stats *ticket.DashboardStats) error
}
