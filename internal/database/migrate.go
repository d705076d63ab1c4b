package database

import (
	"qost_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. The unique
// indexes on users.username/phone/email come from the model tags; they are
// what actually arbitrates concurrent signups.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VerificationCode{},
		&models.RefreshToken{},
		&models.Post{},
		&models.Comment{},
	)
}
