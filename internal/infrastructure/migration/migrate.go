package migration

import (
	"fmt"

	"gorm.io/gorm"

	"hilla/internal/infrastructure/persistence/models"
	"hilla/internal/shared/logger"
)

// Models lists every persistence model covered by schema migration.
func Models() []interface{} {
	return []interface{}{
		&models.CategoryModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.RatingModel{},
		&models.StaffUserModel{},
	}
}

// Run applies the schema with GORM AutoMigrate.
func Run(db *gorm.DB) error {
	logger.Info("starting database migration", "models_count", len(Models()))

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
