package dto

import "qost_backend/internal/models"

// SignUpRequest carries the single free-form identifier a user registers
// with. Classification into phone/email happens in the service.
type SignUpRequest struct {
	EmailOrPhone string `json:"email_or_phone" validate:"required,max=100"`
}

type SignUpResponse struct {
	ID           string           `json:"id"`
	AuthStage    models.AuthStage `json:"auth_stats"`
	AuthType     models.AuthType  `json:"auth_type"`
	Phone        string           `json:"phone,omitempty"`
	Email        string           `json:"email,omitempty"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

type ConfirmCodeRequest struct {
	Code string `json:"code" validate:"required,len=4,numeric"`
}

type ConfirmCodeResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CompleteProfileRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=2,max=30"`
	LastName        string `json:"last_name" validate:"required,min=2,max=30"`
	Username        string `json:"username" validate:"required,min=5,max=30"`
	Password        string `json:"password" validate:"required,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,max=128"`
}

type CompleteProfileResponse struct {
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	AuthStage models.AuthStage `json:"auth_stats"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,max=255"`
}
