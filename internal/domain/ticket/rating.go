package ticket

import (
	"fmt"
	"time"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a submitter's score for a resolved ticket. Ratings are
// append-only and cascade with their ticket.
type Rating struct {
	id        uint
	ticketID  uint
	score     int
	raterName string
	comment   string
	createdAt time.Time
}

func NewRating(ticketID uint, score int, raterName, comment string) (*Rating, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if score < MinRatingScore || score > MaxRatingScore {
		return nil, fmt.Errorf("score must be between %d and %d", MinRatingScore, MaxRatingScore)
	}

	return &Rating{
		ticketID:  ticketID,
		score:     score,
		raterName: raterName,
		comment:   comment,
		createdAt: time.Now(),
	}, nil
}

func ReconstructRating(id, ticketID uint, score int, raterName, comment string, createdAt time.Time) (*Rating, error) {
	if id == 0 {
		return nil, fmt.Errorf("rating ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if score < MinRatingScore || score > MaxRatingScore {
		return nil, fmt.Errorf("score must be between %d and %d", MinRatingScore, MaxRatingScore)
	}

	return &Rating{
		id:        id,
		ticketID:  ticketID,
		score:     score,
		raterName: raterName,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

func (r *Rating) ID() uint {
	return r.id
}

func (r *Rating) TicketID() uint {
	return r.ticketID
}

func (r *Rating) Score() int {
	return r.score
}

func (r *Rating) RaterName() string {
	return r.raterName
}

func (r *Rating) Comment() string {
	return r.comment
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rating ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rating ID cannot be zero")
	}
	r.id = id
	return nil
}
