package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hilla/internal/domain/ticket"
	vo "hilla/internal/domain/ticket/valueobjects"
	"hilla/internal/infrastructure/persistence/models"
	"hilla/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CategoryModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.RatingModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name, slug string) *ticket.Category {
	repo := NewCategoryRepository(db)
	c, err := ticket.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, c.SetSlug(slug))
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func createTestTicket(t *testing.T, repo *TicketRepository, category *ticket.Category, subject string) *ticket.Ticket {
	tk, err := ticket.NewTicket(ticket.NewTicketInput{
		Category: category,
		Type:     vo.TypeQuestion,
		Priority: vo.PriorityMedium,
		Name:     "Dana Rivera",
		Email:    "dana@campus.edu",
		Subject:  subject,
		Message:  "Details for " + subject,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, ticketID uint) int64 {
	var count int64
	err := db.Model(model).Where("ticket_id = ?", ticketID).Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestTicketRepository_DeleteCascadesChildRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, db, "Library", "library")
	doomed := createTestTicket(t, repo, category, "Lost library card")
	kept := createTestTicket(t, repo, category, "Extending a loan")

	for _, tk := range []*ticket.Ticket{doomed, kept} {
		comment, err := ticket.NewComment(tk.ID(), "Sam Okafor", "Following this.")
		require.NoError(t, err)
		require.NoError(t, repo.SaveComment(ctx, comment))

		rating, err := ticket.NewRating(tk.ID(), 4, "", "")
		require.NoError(t, err)
		require.NoError(t, repo.SaveRating(ctx, rating))
	}

	err := repo.Delete(ctx, doomed.ID())
	assert.NoError(t, err)

	_, err = repo.GetByID(ctx, doomed.ID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	assert.Zero(t, countRows(t, db, &models.CommentModel{}, doomed.ID()))
	assert.Zero(t, countRows(t, db, &models.RatingModel{}, doomed.ID()))

	// The other ticket's children are untouched.
	assert.Equal(t, int64(1), countRows(t, db, &models.CommentModel{}, kept.ID()))
	assert.Equal(t, int64(1), countRows(t, db, &models.RatingModel{}, kept.ID()))
}

func TestTicketRepository_RatingsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, db, "Facilities", "facilities")
	tk := createTestTicket(t, repo, category, "Broken radiator in room 204")

	now := time.Now()
	older := models.RatingModel{TicketID: tk.ID(), Score: 2, CreatedAt: now.Add(-time.Hour).UnixMilli()}
	newer := models.RatingModel{TicketID: tk.ID(), Score: 5, CreatedAt: now.UnixMilli()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	ratings, err := repo.RatingsByTicketID(ctx, tk.ID())

	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, 5, ratings[0].Score())
	assert.Equal(t, 2, ratings[1].Score())
	assert.True(t, ratings[0].CreatedAt().After(ratings[1].CreatedAt()))
}

func TestTicketRepository_CommentsChronological(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, db, "IT & Network", "it-network")
	tk := createTestTicket(t, repo, category, "WiFi keeps dropping in dorm B")

	now := time.Now()
	// Inserted newest first to prove ordering comes from the query.
	second := models.CommentModel{TicketID: tk.ID(), AuthorName: "Maya Lindqvist", Text: "Still happening today.", CreatedAt: now.UnixMilli()}
	first := models.CommentModel{TicketID: tk.ID(), AuthorName: "Maya Lindqvist", Text: "Started on Monday.", CreatedAt: now.Add(-time.Hour).UnixMilli()}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)

	comments, err := repo.CommentsByTicketID(ctx, tk.ID())

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Started on Monday.", comments[0].Text())
	assert.Equal(t, "Still happening today.", comments[1].Text())
}

func TestTicketRepository_AverageRatings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, db, "Student Services", "student-services")
	rated := createTestTicket(t, repo, category, "Housing deadline")
	other := createTestTicket(t, repo, category, "Campus card replacement")
	unrated := createTestTicket(t, repo, category, "Lost and found hours")

	for _, score := range []int{5, 4} {
		rating, err := ticket.NewRating(rated.ID(), score, "", "")
		require.NoError(t, err)
		require.NoError(t, repo.SaveRating(ctx, rating))
	}
	rating, err := ticket.NewRating(other.ID(), 3, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveRating(ctx, rating))

	averages, err := repo.AverageRatings(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 4.5, averages[rated.ID()], 0.001)
	assert.InDelta(t, 3.0, averages[other.ID()], 0.001)
	_, ok := averages[unrated.ID()]
	assert.False(t, ok, "unrated tickets are absent from the map")
}
