package repositories

import (
	"errors"

	"qost_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(db *gorm.DB, comment *models.Comment) error
	FindByID(db *gorm.DB, id string) (*models.Comment, error)
	ListByPost(db *gorm.DB, postID string, limit, offset int) ([]models.Comment, error)
	Delete(db *gorm.DB, id string) error
}

type commentRepository struct{}

func NewCommentRepository() CommentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

func (r *commentRepository) FindByID(db *gorm.DB, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(db *gorm.DB, postID string, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Where("post_id = ?", postID).
		Order("created_at ASC").Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
