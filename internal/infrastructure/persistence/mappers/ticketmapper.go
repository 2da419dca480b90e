package mappers

import (
	"time"

	"hilla/internal/domain/ticket"
	vo "hilla/internal/domain/ticket/valueobjects"
	"hilla/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	// The category is loaded separately by the repository and passed in.
	ToDomain(model *models.TicketModel, category *ticket.Category) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	// RatingToModel converts a rating domain entity to a persistence model.
	RatingToModel(r *ticket.Rating) *models.RatingModel

	// RatingToDomain converts a rating persistence model to a domain entity.
	RatingToDomain(model *models.RatingModel) (*ticket.Rating, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UserID:      t.UserID(),
		CategoryID:  t.Category().ID(),
		Type:        t.Type().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		Name:        t.Name(),
		Email:       t.Email(),
		Subject:     t.Subject(),
		Message:     t.Message(),
		Answer:      t.Answer(),
		IsAnswered:  t.IsAnswered(),
		IsAnonymous: t.IsAnonymous(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, category *ticket.Category) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		category,
		vo.TicketType(model.Type),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.Name,
		model.Email,
		model.Subject,
		model.Message,
		model.Answer,
		model.IsAnswered,
		model.IsAnonymous,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorName: c.AuthorName(),
		Text:       c.Text(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorName,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) RatingToModel(r *ticket.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Score:     r.Score(),
		RaterName: r.RaterName(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) RatingToDomain(model *models.RatingModel) (*ticket.Rating, error) {
	return ticket.ReconstructRating(
		model.ID,
		model.TicketID,
		model.Score,
		model.RaterName,
		model.Comment,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}
