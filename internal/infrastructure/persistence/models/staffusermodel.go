package models

// StaffUserModel backs the bootstrap admin account. Passwords are
// stored as bcrypt hashes only.
type StaffUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	Email        string `gorm:"size:254;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (StaffUserModel) TableName() string {
	return "staff_users"
}
