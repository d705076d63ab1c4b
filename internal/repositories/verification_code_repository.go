package repositories

import (
	"errors"
	"time"

	"qost_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCodeNotFound    = errors.New("verification code not found")
	ErrCodeAlreadyUsed = errors.New("verification code already confirmed")
)

// VerificationCodeRepository stores one row per issued code. Rows are never
// deleted; expiry is evaluated at read time.
type VerificationCodeRepository interface {
	Create(db *gorm.DB, code *models.VerificationCode) error
	FindActive(db *gorm.DB, userID, code string, now time.Time) (*models.VerificationCode, error)
	HasActive(db *gorm.DB, userID string, now time.Time) (bool, error)
	Confirm(db *gorm.DB, codeID string) error
	CountForUser(db *gorm.DB, userID string) (int64, error)
}

type verificationCodeRepository struct{}

func NewVerificationCodeRepository() VerificationCodeRepository {
	return &verificationCodeRepository{}
}

func (r *verificationCodeRepository) Create(db *gorm.DB, code *models.VerificationCode) error {
	return db.Create(code).Error
}

func (r *verificationCodeRepository) FindActive(db *gorm.DB, userID, code string, now time.Time) (*models.VerificationCode, error) {
	var vc models.VerificationCode
	err := db.Where("user_id = ? AND code = ? AND is_confirmed = ? AND expire_time >= ?",
		userID, code, false, now).
		First(&vc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}
	return &vc, nil
}

func (r *verificationCodeRepository) HasActive(db *gorm.DB, userID string, now time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.VerificationCode{}).
		Where("user_id = ? AND is_confirmed = ? AND expire_time >= ?", userID, false, now).
		Count(&count).Error
	return count > 0, err
}

// Confirm flips is_confirmed exactly once. The guard in the WHERE clause
// makes the operation atomic: a concurrent resubmission sees zero rows.
func (r *verificationCodeRepository) Confirm(db *gorm.DB, codeID string) error {
	result := db.Model(&models.VerificationCode{}).
		Where("id = ? AND is_confirmed = ?", codeID, false).
		Update("is_confirmed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCodeAlreadyUsed
	}
	return nil
}

func (r *verificationCodeRepository) CountForUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.VerificationCode{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
