package bootstrap

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hilla/internal/infrastructure/persistence/models"
	"hilla/internal/shared/config"
	"hilla/internal/shared/logger"
)

// EnsureDefaultAdmin guarantees the configured admin account exists
// with admin rights. Safe to run on every startup; an existing account
// keeps its password.
func EnsureDefaultAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("admin username and password must be configured")
	}

	var existing models.StaffUserModel
	err := db.Where("username = ?", cfg.Username).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsAdmin {
			return nil
		}
		if err := db.Model(&existing).Update("is_admin", true).Error; err != nil {
			return fmt.Errorf("failed to promote admin account: %w", err)
		}
		logger.Info("promoted existing account to admin", "username", cfg.Username)
		return nil
	case err != gorm.ErrRecordNotFound:
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := hashPassword(cfg.Password)
	if err != nil {
		return err
	}

	account := models.StaffUserModel{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := db.Create(&account).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("created default admin account", "username", cfg.Username)
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}
