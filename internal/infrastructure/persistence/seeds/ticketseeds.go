package seeds

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hilla/internal/infrastructure/persistence/models"
)

// SeedDemoData loads a small, repeatable demo dataset. Existing rows
// are left alone so the seed can run against a non-empty database.
func SeedDemoData(db *gorm.DB) error {
	categories := []models.CategoryModel{
		{Name: "IT & Network", Slug: "it-network"},
		{Name: "Facilities", Slug: "facilities"},
		{Name: "Student Services", Slug: "student-services"},
		{Name: "Library", Slug: "library"},
	}

	slugToID := make(map[string]uint, len(categories))
	for i := range categories {
		var existing models.CategoryModel
		err := db.Where("slug = ?", categories[i].Slug).First(&existing).Error
		switch {
		case err == nil:
			slugToID[existing.Slug] = existing.ID
			continue
		case err != gorm.ErrRecordNotFound:
			return fmt.Errorf("failed to check category %q: %w", categories[i].Slug, err)
		}

		if err := db.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", categories[i].Slug, err)
		}
		slugToID[categories[i].Slug] = categories[i].ID
	}

	var ticketCount int64
	if err := db.Model(&models.TicketModel{}).Count(&ticketCount).Error; err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if ticketCount > 0 {
		return nil
	}

	now := time.Now()
	tickets := []models.TicketModel{
		{
			CategoryID: slugToID["it-network"],
			Type:       "complaint",
			Priority:   "high",
			Status:     "open",
			Name:       "Maya Lindqvist",
			Email:      "maya.lindqvist@example.edu",
			Subject:    "WiFi keeps dropping in dorm B",
			Message:    "The connection in dorm B drops every few minutes since Monday.",
			CreatedAt:  now.Add(-72 * time.Hour).UnixMilli(),
			UpdatedAt:  now.Add(-72 * time.Hour).UnixMilli(),
		},
		{
			CategoryID: slugToID["facilities"],
			Type:       "complaint",
			Priority:   "medium",
			Status:     "in_progress",
			Name:       "Jonas Petersen",
			Email:      "jonas.petersen@example.edu",
			Subject:    "Broken radiator in room 204",
			Message:    "The radiator in lecture room 204 has been cold for a week.",
			CreatedAt:  now.Add(-48 * time.Hour).UnixMilli(),
			UpdatedAt:  now.Add(-24 * time.Hour).UnixMilli(),
		},
		{
			CategoryID:  slugToID["student-services"],
			Type:        "question",
			Priority:    "low",
			Status:      "closed",
			IsAnonymous: true,
			Subject:     "Deadline for housing applications",
			Message:     "When is the deadline to apply for student housing next term?",
			Answer:      "Applications close on the 15th of next month. Apply via the student portal.",
			IsAnswered:  true,
			CreatedAt:   now.Add(-120 * time.Hour).UnixMilli(),
			UpdatedAt:   now.Add(-96 * time.Hour).UnixMilli(),
		},
		{
			CategoryID: slugToID["library"],
			Type:       "question",
			Priority:   "medium",
			Status:     "closed",
			Name:       "Aisha Rahman",
			Email:      "aisha.rahman@example.edu",
			Subject:    "Extending a book loan",
			Message:    "Can I extend a loan that another student has reserved?",
			Answer:     "Reserved items cannot be extended. Return it by the due date.",
			IsAnswered: true,
			CreatedAt:  now.Add(-200 * time.Hour).UnixMilli(),
			UpdatedAt:  now.Add(-150 * time.Hour).UnixMilli(),
		},
	}

	for i := range tickets {
		if err := db.Create(&tickets[i]).Error; err != nil {
			return fmt.Errorf("failed to seed ticket %q: %w", tickets[i].Subject, err)
		}
	}

	ratings := []models.RatingModel{
		{TicketID: tickets[2].ID, Score: 5, RaterName: "", Comment: "Quick and clear answer.", CreatedAt: now.Add(-90 * time.Hour).UnixMilli()},
		{TicketID: tickets[3].ID, Score: 4, RaterName: "Aisha Rahman", Comment: "Helpful, thanks.", CreatedAt: now.Add(-140 * time.Hour).UnixMilli()},
		{TicketID: tickets[3].ID, Score: 3, CreatedAt: now.Add(-130 * time.Hour).UnixMilli()},
	}
	for i := range ratings {
		if err := db.Create(&ratings[i]).Error; err != nil {
			return fmt.Errorf("failed to seed rating: %w", err)
		}
	}

	comments := []models.CommentModel{
		{TicketID: tickets[0].ID, AuthorName: "Maya Lindqvist", Text: "Still happening today, now also in the common room.", CreatedAt: now.Add(-40 * time.Hour).UnixMilli()},
		{TicketID: tickets[1].ID, AuthorName: "Facilities desk", Text: "A technician is scheduled for Thursday morning.", CreatedAt: now.Add(-20 * time.Hour).UnixMilli()},
	}
	for i := range comments {
		if err := db.Create(&comments[i]).Error; err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}

	return nil
}

// ClearTickets wipes tickets and their child rows. Categories and
// staff accounts survive.
func ClearTickets(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.CommentModel{},
		&models.RatingModel{},
		&models.TicketModel{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear tickets: %w", err)
		}
	}
	return nil
}
