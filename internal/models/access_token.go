package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenSlotAPI is the named token slot reused on every login. Issuing a new
// token for a slot revokes the previous one.
const TokenSlotAPI = "api"

// AccessToken is an opaque bearer credential. Only the SHA-256 digest of the
// token is stored; the plaintext is returned to the client exactly once.
type AccessToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(50);not null"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
