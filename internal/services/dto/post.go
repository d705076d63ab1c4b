package dto

import "qost_backend/internal/models"

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=35"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,max=35"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

type PostListResponse struct {
	Posts    []models.Post `json:"posts"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
