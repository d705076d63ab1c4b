package models

import "time"

// Expiry windows differ by channel: SMS delivery is near-instant, email is
// given a little more slack.
const (
	PhoneCodeTTL = 3 * time.Minute
	EmailCodeTTL = 5 * time.Minute
)

// VerificationCode is a single-use 4-digit code proving control of a phone
// number or email address. Codes are never deleted; expired or confirmed
// rows stay behind as an audit trail.
type VerificationCode struct {
	BaseModel
	UserID           string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Code             string    `gorm:"type:varchar(8);not null" json:"-"`
	VerificationType AuthType  `gorm:"type:varchar(20);not null" json:"verification_type"`
	ExpireTime       time.Time `gorm:"not null" json:"expire_time"`
	IsConfirmed      bool      `gorm:"default:false" json:"is_confirmed"`
}

// TTLFor returns the expiry window for a delivery channel.
func TTLFor(channel AuthType) time.Duration {
	if channel == AuthTypePhone {
		return PhoneCodeTTL
	}
	return EmailCodeTTL
}
