package services

import (
	"qost_backend/internal/auth"
	"qost_backend/internal/models"
	"qost_backend/internal/repositories"
	"qost_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService validates credentials and manages token pairs.
type AuthService interface {
	Login(db *gorm.DB, identifier, password string) (*auth.TokenPair, error)
	IssuePair(db *gorm.DB, user *models.User) (*auth.TokenPair, error)
	Refresh(db *gorm.DB, refreshToken string) (*auth.TokenPair, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type authService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokens           *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokens:           tokens,
	}
}

// Login resolves the identifier against username, phone and email. Unknown
// user and wrong password produce the same error so the endpoint cannot be
// used to probe which identities exist.
func (s *authService) Login(db *gorm.DB, identifier, password string) (*auth.TokenPair, error) {
	user, err := s.userRepo.FindByIdentifier(db, identifier)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.HashedPassword(user.PasswordHash).Matches(auth.RawPassword(password)) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.IssuePair(db, user)
}

// IssuePair signs a fresh pair and persists the refresh token so it can be
// rotated and revoked.
func (s *authService) IssuePair(db *gorm.DB, user *models.User) (*auth.TokenPair, error) {
	pair, refreshExpiry, err := s.tokens.GeneratePair(
		user.ID, user.Username, string(user.UserStatus), string(user.AuthStage))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     pair.RefreshToken,
		ExpiresAt: refreshExpiry,
	}
	if err := s.refreshTokenRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &pair, nil
}

// Refresh rotates: the presented token is validated, revoked and replaced.
func (s *authService) Refresh(db *gorm.DB, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if _, err := s.refreshTokenRepo.FindByToken(db, refreshToken); err != nil {
		// Signed but unknown to us: already rotated or revoked.
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.IssuePair(db, user)
}

func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}
