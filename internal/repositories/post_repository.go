package repositories

import (
	"errors"

	"qost_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	List(db *gorm.DB, limit, offset int) ([]models.Post, int64, error)
	ListByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Post, error)
	Update(db *gorm.DB, post *models.Post) error
	IncrementLikes(db *gorm.DB, id string) error
	Delete(db *gorm.DB, id string) error
}

type postRepository struct{}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func (r *postRepository) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *postRepository) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	if err := db.Preload("Comments").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(db *gorm.DB, limit, offset int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) ListByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(db *gorm.DB, post *models.Post) error {
	result := db.Model(post).Updates(map[string]interface{}{
		"title":   post.Title,
		"content": post.Content,
		"image":   post.Image,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// IncrementLikes bumps the counter in a single UPDATE so concurrent likes
// are not lost.
func (r *postRepository) IncrementLikes(db *gorm.DB, id string) error {
	result := db.Model(&models.Post{}).Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
