package handlers

import (
	"net/http"

	"qost_backend/internal/auth"
	"qost_backend/internal/middleware"
	"qost_backend/internal/services"
	"qost_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService    services.PostService
	commentService services.CommentService
	tokens         *auth.TokenManager
}

func NewPostHandler(base *BaseHandler, postService services.PostService, commentService services.CommentService, tokens *auth.TokenManager) *PostHandler {
	return &PostHandler{
		BaseHandler:    base,
		postService:    postService,
		commentService: commentService,
		tokens:         tokens,
	}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Reading the feed is public.
	posts := rg.Group("/posts")
	{
		posts.GET("", h.List)
		posts.GET("/:id", h.Get)
		posts.GET("/:id/comments", h.ListComments)
	}

	authed := rg.Group("/posts")
	authed.Use(middleware.AuthMiddleware(h.tokens))
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
		authed.POST("/:id/like", h.Like)
		authed.POST("/:id/comments", h.CreateComment)
	}

	comments := rg.Group("/comments")
	comments.Use(middleware.AuthMiddleware(h.tokens))
	{
		comments.DELETE("/:id", h.DeleteComment)
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	post, err := h.postService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	post, err := h.postService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	resp, err := h.postService.List(db, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	post, err := h.postService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Like(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.postService.Like(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "Success",
		Message: "Post liked",
	})
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.postService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "Success",
		Message: "Post deleted",
	})
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	comment, err := h.commentService.Create(db, userID, c.Param("id"), req.Text)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	db := h.GetDB(c)

	comments, err := h.commentService.ListByPost(db, c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.commentService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "Success",
		Message: "Comment deleted",
	})
}
