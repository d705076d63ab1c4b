package repositories

import (
	"errors"

	"qost_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateIdentity = errors.New("phone, email or username already taken")
)

// UserRepository persists user records. Uniqueness of phone, email and
// username is enforced by database constraints, not application checks, so
// concurrent signups cannot both win.
type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	FindByIdentifier(db *gorm.DB, identifier string) (*models.User, error)
	UsernameExists(db *gorm.DB, username string) (bool, error)
	IdentifierExists(db *gorm.DB, identifier string) (bool, error)
	Update(db *gorm.DB, user *models.User) error
	UpdateAuthStage(db *gorm.DB, userID string, stage models.AuthStage) error
	Delete(db *gorm.DB, userID string) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier resolves a login identifier against username, phone and
// email in one query.
func (r *userRepository) FindByIdentifier(db *gorm.DB, identifier string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ? OR phone = ? OR email = ?", identifier, identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UsernameExists(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) IdentifierExists(db *gorm.DB, identifier string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("phone = ? OR email = ?", identifier, identifier).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	result := db.Save(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateIdentity
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateAuthStage(db *gorm.DB, userID string, stage models.AuthStage) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("auth_stage", stage)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(db *gorm.DB, userID string) error {
	result := db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
