package services

import (
	"qost_backend/internal/models"
	"qost_backend/internal/repositories"
	"qost_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CommentService interface {
	Create(db *gorm.DB, userID, postID, text string) (*models.Comment, error)
	ListByPost(db *gorm.DB, postID string, page, pageSize int) ([]models.Comment, error)
	Delete(db *gorm.DB, userID, commentID string) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) Create(db *gorm.DB, userID, postID, text string) (*models.Comment, error) {
	if _, err := s.postRepo.FindByID(db, postID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		UserID: userID,
		PostID: postID,
		Text:   text,
	}
	if err := s.commentRepo.Create(db, comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comment, nil
}

func (s *commentService) ListByPost(db *gorm.DB, postID string, page, pageSize int) ([]models.Comment, error) {
	offset := (page - 1) * pageSize
	comments, err := s.commentRepo.ListByPost(db, postID, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comments, nil
}

// Delete allows the comment author to remove their comment. Post owners do
// not get moderation rights here.
func (s *commentService) Delete(db *gorm.DB, userID, commentID string) error {
	comment, err := s.commentRepo.FindByID(db, commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.NewNotFoundError("Comment not found")
		}
		return apperrors.InternalError(err)
	}
	if comment.UserID != userID {
		return apperrors.NewForbiddenError("You can only delete your own comments")
	}
	if err := s.commentRepo.Delete(db, commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
