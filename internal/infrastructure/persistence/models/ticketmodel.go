package models

type TicketModel struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      *uint   `gorm:"index"`
	CategoryID  uint    `gorm:"not null;index"`
	Type        string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	Status      string  `gorm:"size:20;not null;index"`
	Name        string  `gorm:"size:120;not null"`
	Email       string  `gorm:"size:254;not null"`
	Subject     string  `gorm:"size:200;not null"`
	Message     string  `gorm:"type:text;not null"`
	Answer      string  `gorm:"type:text"`
	IsAnswered  bool    `gorm:"not null;default:false"`
	IsAnonymous bool    `gorm:"not null;default:false"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorName string `gorm:"size:120;not null"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type RatingModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Score     int    `gorm:"not null"`
	RaterName string `gorm:"size:120"`
	Comment   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RatingModel) TableName() string {
	return "ticket_ratings"
}
