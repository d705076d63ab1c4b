package models

import "time"

// RefreshToken is stored server-side so a stolen token can be revoked and so
// refresh is rotation-safe.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
