package services

import (
	"errors"
	"strings"

	"qost_backend/internal/auth"
	"qost_backend/internal/models"
	"qost_backend/internal/repositories"
	"qost_backend/internal/services/dto"
	"qost_backend/internal/utils"
	"qost_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cap on generate-and-check attempts for the placeholder username, so a
// pathological store cannot spin this loop forever.
const maxUsernameAttempts = 10

const usernamePrefix = "qost-"

// AccountService orchestrates the signup -> verification -> profile
// completion lifecycle.
type AccountService interface {
	SignUp(db *gorm.DB, emailOrPhone string) (*dto.SignUpResponse, error)
	ConfirmCode(db *gorm.DB, userID, code string) (*auth.TokenPair, error)
	RequestNewCode(db *gorm.DB, userID string) error
	CompleteProfile(db *gorm.DB, userID string, req *dto.CompleteProfileRequest) (models.AuthStage, error)
	UpdateAvatar(db *gorm.DB, userID, avatar string) (models.AuthStage, error)
}

type accountService struct {
	userRepo     repositories.UserRepository
	verification VerificationService
	authService  AuthService
}

func NewAccountService(
	userRepo repositories.UserRepository,
	verification VerificationService,
	authService AuthService,
) AccountService {
	return &accountService{
		userRepo:     userRepo,
		verification: verification,
		authService:  authService,
	}
}

func (s *accountService) SignUp(db *gorm.DB, emailOrPhone string) (*dto.SignUpResponse, error) {
	identifier := strings.TrimSpace(emailOrPhone)

	var user *models.User
	switch utils.ClassifyIdentifier(identifier) {
	case utils.IdentifierPhone:
		user = &models.User{
			Phone:    &identifier,
			AuthType: models.AuthTypePhone,
		}
	case utils.IdentifierEmail:
		normalized := strings.ToLower(identifier)
		user = &models.User{
			Email:    &normalized,
			AuthType: models.AuthTypeEmail,
		}
	default:
		return nil, apperrors.ErrUnrecognizedIdentifier
	}

	taken, err := s.userRepo.IdentifierExists(db, user.Identifier())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrDuplicateIdentity
	}

	username, err := s.generateUsername(db)
	if err != nil {
		return nil, err
	}
	hashed, err := auth.HashPassword(auth.GeneratePassword())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.Username = username
	user.PasswordHash = string(hashed)
	user.UserStatus = models.UserStatusUser
	user.AuthStage = models.AuthStageNew

	if err := s.userRepo.Create(db, user); err != nil {
		// A concurrent signup may have claimed the identifier after our
		// pre-check; the unique constraint is the arbiter.
		if apperrors.Is(err, repositories.ErrDuplicateIdentity) {
			return nil, apperrors.ErrDuplicateIdentity
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.verification.IssueCode(db, user); err != nil {
		return nil, err
	}

	pair, err := s.authService.IssuePair(db, user)
	if err != nil {
		return nil, err
	}

	resp := &dto.SignUpResponse{
		ID:           user.ID,
		AuthStage:    user.AuthStage,
		AuthType:     user.AuthType,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if user.Phone != nil {
		resp.Phone = utils.MaskPhone(*user.Phone)
	}
	if user.Email != nil {
		resp.Email = utils.MaskEmail(*user.Email)
	}
	return resp, nil
}

func (s *accountService) ConfirmCode(db *gorm.DB, userID, code string) (*auth.TokenPair, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.verification.CheckAndConsume(db, user, code); err != nil {
		return nil, err
	}

	return s.authService.IssuePair(db, user)
}

func (s *accountService) RequestNewCode(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.verification.RequestNewCode(db, user)
}

func (s *accountService) CompleteProfile(db *gorm.DB, userID string, req *dto.CompleteProfileRequest) (models.AuthStage, error) {
	if req.Password != req.ConfirmPassword {
		return "", apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(auth.RawPassword(req.Password)); err != nil {
		return "", apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return "", apperrors.ErrUserNotFound
	}

	hashed, err := auth.HashPassword(auth.RawPassword(req.Password))
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	user.PasswordHash = string(hashed)
	if user.AuthStage == models.AuthStageCodeVerified {
		user.AuthStage = models.AuthStageDone
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateIdentity) {
			return "", apperrors.ErrDuplicateIdentity
		}
		return "", apperrors.InternalError(err)
	}

	return user.AuthStage, nil
}

// UpdateAvatar only ever touches the caller's own record; completing the
// photo step moves a finished account into the photo_step stage.
func (s *accountService) UpdateAvatar(db *gorm.DB, userID, avatar string) (models.AuthStage, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return "", apperrors.ErrUserNotFound
	}

	user.Avatar = avatar
	if user.AuthStage == models.AuthStageDone {
		user.AuthStage = models.AuthStagePhotoStep
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return "", apperrors.InternalError(err)
	}
	return user.AuthStage, nil
}

// generateUsername picks "qost-" plus the tail of a UUID and retries on
// collision, bounded by maxUsernameAttempts.
func (s *accountService) generateUsername(db *gorm.DB) (string, error) {
	for i := 0; i < maxUsernameAttempts; i++ {
		id := uuid.NewString()
		candidate := usernamePrefix + id[strings.LastIndex(id, "-")+1:]

		exists, err := s.userRepo.UsernameExists(db, candidate)
		if err != nil {
			return "", apperrors.InternalError(err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", apperrors.InternalError(errors.New("could not allocate a unique username"))
}
