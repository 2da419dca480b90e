package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hilla/internal/domain/ticket"
	"hilla/internal/infrastructure/persistence/mappers"
	"hilla/internal/infrastructure/persistence/models"
	"hilla/internal/shared/db"
	"hilla/internal/shared/errors"
)

type TicketRepository struct {
	db             *gorm.DB
	mapper         mappers.TicketMapper
	categoryMapper mappers.CategoryMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:             db,
		mapper:         mappers.NewTicketMapper(),
		categoryMapper: mappers.NewCategoryMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete removes the ticket together with its comments and ratings in
// one transaction.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.RatingModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket ratings: %w", err)
		}
		if err := tx.Delete(&models.TicketModel{}, ticketID).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	category, err := r.loadCategory(ctx, model.CategoryID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, category)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.CategoryModel
	if err := tx.Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make(map[uint]*ticket.Category, len(categoryModels))
	for i := range categoryModels {
		c, err := r.categoryMapper.ToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories[c.ID()] = c
	}

	var ticketModels []models.TicketModel
	if err := tx.Order("created_at DESC, id DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		category, ok := categories[ticketModels[i].CategoryID]
		if !ok {
			return nil, fmt.Errorf("ticket %d references missing category %d",
				ticketModels[i].ID, ticketModels[i].CategoryID)
		}
		t, err := r.mapper.ToDomain(&ticketModels[i], category)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

func (r *TicketRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by category: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *TicketRepository) CommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var commentModels []models.CommentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (r *TicketRepository) SaveRating(ctx context.Context, rating *ticket.Rating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return rating.SetID(model.ID)
}

// RatingsByTicketID returns the ticket's ratings newest first.
func (r *TicketRepository) RatingsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Rating, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ratingModels []models.RatingModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	return r.ratingsToDomain(ratingModels)
}

func (r *TicketRepository) ListRatings(ctx context.Context) ([]*ticket.Rating, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ratingModels []models.RatingModel
	if err := tx.Find(&ratingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	return r.ratingsToDomain(ratingModels)
}

// AverageRatings aggregates in the database so list views do not pull
// every rating row.
func (r *TicketRepository) AverageRatings(ctx context.Context) (map[uint]float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		TicketID uint
		Avg      float64
	}
	if err := tx.
		Model(&models.RatingModel{}).
		Select("ticket_id, AVG(score) AS avg").
		Group("ticket_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	averages := make(map[uint]float64, len(rows))
	for _, row := range rows {
		averages[row.TicketID] = row.Avg
	}

	return averages, nil
}

func (r *TicketRepository) ratingsToDomain(ratingModels []models.RatingModel) ([]*ticket.Rating, error) {
	ratings := make([]*ticket.Rating, 0, len(ratingModels))
	for i := range ratingModels {
		rating, err := r.mapper.RatingToDomain(&ratingModels[i])
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func (r *TicketRepository) loadCategory(ctx context.Context, categoryID uint) (*ticket.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CategoryModel
	if err := tx.First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.categoryMapper.ToDomain(&model)
}
