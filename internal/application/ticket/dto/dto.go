// Package dto defines the wire representations shared by the ticket
// use cases and HTTP handlers.
package dto

import (
	"time"

	"hilla/internal/domain/ticket"
)

// TicketDTO is the JSON representation of a ticket. id, created_at,
// updated_at, and average_rating are server-controlled.
type TicketDTO struct {
	ID            uint      `json:"id"`
	User          *uint     `json:"user"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	IsAnonymous   bool      `json:"is_anonymous"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	Answer        string    `json:"answer"`
	AnswerHTML    string    `json:"answer_html,omitempty"`
	IsAnswered    bool      `json:"is_answered"`
	AverageRating *float64  `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromTicket maps a domain ticket and its average rating to the wire
// shape. Categories are exposed by slug.
func FromTicket(t *ticket.Ticket, averageRating *float64) TicketDTO {
	return TicketDTO{
		ID:            t.ID(),
		User:          t.UserID(),
		Category:      t.Category().Slug(),
		Type:          t.Type().String(),
		Priority:      t.Priority().String(),
		Status:        t.Status().String(),
		Name:          t.Name(),
		Email:         t.Email(),
		IsAnonymous:   t.IsAnonymous(),
		Subject:       t.Subject(),
		Message:       t.Message(),
		Answer:        t.Answer(),
		IsAnswered:    t.IsAnswered(),
		AverageRating: averageRating,
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func FromCategory(c *ticket.Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID(),
		Name: c.Name(),
		Slug: c.Slug(),
	}
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromComment(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorName: c.AuthorName(),
		Text:       c.Text(),
		CreatedAt:  c.CreatedAt(),
	}
}

type RatingDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket"`
	Score     int       `json:"score"`
	RaterName string    `json:"rater_name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRating(r *ticket.Rating) RatingDTO {
	return RatingDTO{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Score:     r.Score(),
		RaterName: r.RaterName(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt(),
	}
}
