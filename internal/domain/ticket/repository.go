package ticket

import "context"

// TicketRepository persists tickets and their child records. Delete
// cascades to comments and ratings.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// List returns the full ticket snapshot, newest first.
	List(ctx context.Context) ([]*Ticket, error)
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)

	SaveComment(ctx context.Context, comment *Comment) error
	CommentsByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)

	SaveRating(ctx context.Context, rating *Rating) error
	// RatingsByTicketID returns ratings newest first.
	RatingsByTicketID(ctx context.Context, ticketID uint) ([]*Rating, error)
	ListRatings(ctx context.Context) ([]*Rating, error)
	// AverageRatings maps ticket ID to mean score; tickets with no
	// ratings are absent from the map.
	AverageRatings(ctx context.Context) (map[uint]float64, error)
}

// CategoryRepository persists categories. Save must fail with a
// duplicate error when the slug collides; callers retry with the next
// slug candidate.
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID uint) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
