package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PendingContactRequest is an unverified contact-form submission awaiting
// email confirmation. Once IsVerified is set the record is never mutated
// again.
type PendingContactRequest struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255);not null"`
	Message string    `gorm:"type:text;not null"`
	// Token is the single-use verification secret embedded in the mailed link.
	Token      string `gorm:"type:varchar(64);uniqueIndex;not null"`
	IsVerified bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// ContactRequest is the durable, trusted contact event. It is created exactly
// once, from the pending record's stored fields, when verification succeeds.
type ContactRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}
