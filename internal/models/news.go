package models

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Text        string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"not null"`
	Image       *string   `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (News) TableName() string {
	return "news"
}
