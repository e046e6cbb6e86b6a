package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	// Image holds the blob-store key, never a public URL.
	Image      *string    `gorm:"type:varchar(255)"`
	Price      *float64   `gorm:"type:numeric(10,2)"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive   bool       `gorm:"not null;default:true"`
	CreatedAt  time.Time  `gorm:"index"`
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}
