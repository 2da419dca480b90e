package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hilla/internal/application/ticket/usecases"
	"hilla/internal/shared/errors"
)

type CreateTicketRequest struct {
	Category    string `json:"category" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Priority    string `json:"priority"`
	Name        string `json:"name" binding:"max=120"`
	Email       string `json:"email" binding:"omitempty,email"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Message     string `json:"message" binding:"required,max=5000"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func (r *CreateTicketRequest) ToCommand(userID *uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		UserID:       userID,
		CategorySlug: r.Category,
		Type:         r.Type,
		Priority:     r.Priority,
		Name:         r.Name,
		Email:        r.Email,
		Subject:      r.Subject,
		Message:      r.Message,
		IsAnonymous:  r.IsAnonymous,
	}
}

// UpdateTicketRequest carries a partial update; absent fields stay
// untouched.
type UpdateTicketRequest struct {
	Category *string `json:"category"`
	Type     *string `json:"type"`
	Priority *string `json:"priority"`
	Subject  *string `json:"subject" binding:"omitempty,max=200"`
	Message  *string `json:"message" binding:"omitempty,max=5000"`
	Answer   *string `json:"answer"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:     ticketID,
		CategorySlug: r.Category,
		Type:         r.Type,
		Priority:     r.Priority,
		Subject:      r.Subject,
		Message:      r.Message,
		Answer:       r.Answer,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
	Next   string `json:"-" form:"next"`
}

type AddCommentRequest struct {
	AuthorName string `json:"author_name" binding:"required,max=120"`
	Text       string `json:"text" binding:"required,max=5000"`
}

type AddRatingRequest struct {
	Score     int    `json:"score" binding:"required"`
	RaterName string `json:"rater_name" binding:"max=120"`
	Comment   string `json:"comment" binding:"max=5000"`
}

func parseListTicketsQuery(c *gin.Context) usecases.ListTicketsQuery {
	// Unknown filter values are passed through; the queue builder
	// ignores what it does not recognize.
	return usecases.ListTicketsQuery{
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		CategorySlug: c.Query("category"),
		Query:        c.Query("q"),
		Sort:         c.Query("sort"),
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket ID")
	}
	return uint(id), nil
}
