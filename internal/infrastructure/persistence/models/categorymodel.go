package models

type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	Slug      string `gorm:"uniqueIndex;size:140;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "ticket_categories"
}
