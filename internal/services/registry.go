package services

import "qost_backend/internal/email"

// ServiceContainer bundles every service the handlers need.
type ServiceContainer struct {
	AccountService      AccountService
	AuthService         AuthService
	VerificationService VerificationService
	PostService         PostService
	CommentService      CommentService
	EmailService        email.Provider
}
