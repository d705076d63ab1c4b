package services

import (
	"qost_backend/internal/models"
	"qost_backend/internal/repositories"
	"qost_backend/internal/services/dto"
	"qost_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PostService owns the post surface. Mutations are owner-only.
type PostService interface {
	Create(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*models.Post, error)
	Get(db *gorm.DB, postID string) (*models.Post, error)
	List(db *gorm.DB, page, pageSize int) (*dto.PostListResponse, error)
	Update(db *gorm.DB, userID, postID string, req *dto.UpdatePostRequest) (*models.Post, error)
	Like(db *gorm.DB, postID string) error
	Delete(db *gorm.DB, userID, postID string) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) Create(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	}
	if err := s.postRepo.Create(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *postService) Get(db *gorm.DB, postID string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *postService) List(db *gorm.DB, page, pageSize int) (*dto.PostListResponse, error) {
	offset := (page - 1) * pageSize
	posts, total, err := s.postRepo.List(db, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PostListResponse{
		Posts:    posts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *postService) Update(db *gorm.DB, userID, postID string, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.ownedPost(db, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Image = req.Image

	if err := s.postRepo.Update(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *postService) Like(db *gorm.DB, postID string) error {
	if err := s.postRepo.IncrementLikes(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *postService) Delete(db *gorm.DB, userID, postID string) error {
	if _, err := s.ownedPost(db, userID, postID); err != nil {
		return err
	}
	if err := s.postRepo.Delete(db, postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *postService) ownedPost(db *gorm.DB, userID, postID string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if post.UserID != userID {
		return nil, apperrors.NewForbiddenError("You can only modify your own posts")
	}
	return post, nil
}
