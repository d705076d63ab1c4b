package handlers

import (
	"net/http"

	"qost_backend/internal/auth"
	"qost_backend/internal/middleware"
	"qost_backend/internal/services"
	"qost_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the signup -> verification -> profile lifecycle.
type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
	tokens         *auth.TokenManager
}

func NewAccountHandler(base *BaseHandler, accountService services.AccountService, tokens *auth.TokenManager) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
		tokens:         tokens,
	}
}

func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.SignUp)
	}

	authed := rg.Group("/users")
	authed.Use(middleware.AuthMiddleware(h.tokens))
	{
		authed.POST("/code", h.ConfirmCode)
		authed.GET("/code/new", h.RequestNewCode)
		authed.PUT("/me", h.CompleteProfile)
		authed.PATCH("/me", h.CompleteProfile)
		authed.PATCH("/me/photo", h.UpdateAvatar)
	}
}

func (h *AccountHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.accountService.SignUp(db, req.EmailOrPhone)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AccountHandler) ConfirmCode(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ConfirmCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	pair, err := h.accountService.ConfirmCode(db, userID, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmCodeResponse{
		Status:       "Success",
		Message:      "Code confirmed",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AccountHandler) RequestNewCode(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.accountService.RequestNewCode(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "Success",
		Message: "Code sent",
	})
}

func (h *AccountHandler) CompleteProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CompleteProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	stage, err := h.accountService.CompleteProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompleteProfileResponse{
		Status:    "Success",
		Message:   "User updated successfully",
		AuthStage: stage,
	})
}

func (h *AccountHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAvatarRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	stage, err := h.accountService.UpdateAvatar(db, userID, req.Avatar)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompleteProfileResponse{
		Status:    "Success",
		Message:   "Avatar updated",
		AuthStage: stage,
	})
}
