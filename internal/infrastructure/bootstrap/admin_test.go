package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hilla/internal/infrastructure/persistence/models"
	"hilla/internal/shared/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StaffUserModel{}))
	return db
}

func TestEnsureDefaultAdmin_CreatesAccount(t *testing.T) {
	db := setupTestDB(t)

	err := EnsureDefaultAdmin(db, &config.AdminConfig{
		Username: "admin",
		Password: "correct horse battery",
		Email:    "admin@hilla.local",
	})
	require.NoError(t, err)

	var account models.StaffUserModel
	require.NoError(t, db.Where("username = ?", "admin").First(&account).Error)
	assert.True(t, account.IsAdmin)
	assert.Equal(t, "admin@hilla.local", account.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash), []byte("correct horse battery")))
}

func TestEnsureDefaultAdmin_ExistingAccountKeepsPassword(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.AdminConfig{Username: "admin", Password: "first", Email: "admin@hilla.local"}
	require.NoError(t, EnsureDefaultAdmin(db, cfg))

	var before models.StaffUserModel
	require.NoError(t, db.Where("username = ?", "admin").First(&before).Error)

	cfg.Password = "second"
	require.NoError(t, EnsureDefaultAdmin(db, cfg))

	var after models.StaffUserModel
	require.NoError(t, db.Where("username = ?", "admin").First(&after).Error)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestEnsureDefaultAdmin_PromotesExistingAccount(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.StaffUserModel{
		Username:     "admin",
		Email:        "admin@hilla.local",
		PasswordHash: "existing-hash",
		IsAdmin:      false,
	}).Error)

	err := EnsureDefaultAdmin(db, &config.AdminConfig{
		Username: "admin",
		Password: "ignored",
		Email:    "admin@hilla.local",
	})
	require.NoError(t, err)

	var account models.StaffUserModel
	require.NoError(t, db.Where("username = ?", "admin").First(&account).Error)
	assert.True(t, account.IsAdmin)
	assert.Equal(t, "existing-hash", account.PasswordHash)
}

func TestEnsureDefaultAdmin_RequiresCredentials(t *testing.T) {
	db := setupTestDB(t)

	err := EnsureDefaultAdmin(db, &config.AdminConfig{Username: "admin"})

	assert.Error(t, err)
}
