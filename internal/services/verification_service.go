package services

import (
	"crypto/rand"
	"math/big"
	"time"

	"qost_backend/internal/email"
	"qost_backend/internal/logger"
	"qost_backend/internal/models"
	"qost_backend/internal/repositories"
	"qost_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const codeLength = 4

// VerificationService issues and consumes one-time verification codes.
type VerificationService interface {
	// IssueCode generates a fresh code for the user's channel, persists it
	// and (for email) triggers delivery. Returns the code.
	IssueCode(db *gorm.DB, user *models.User) (string, error)

	// RequestNewCode refuses while an unexpired unconfirmed code exists,
	// then issues a replacement.
	RequestNewCode(db *gorm.DB, user *models.User) error

	// CheckAndConsume confirms a submitted code exactly once and advances a
	// "new" account to the verified stage.
	CheckAndConsume(db *gorm.DB, user *models.User, submitted string) error
}

type verificationService struct {
	codeRepo      repositories.VerificationCodeRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewVerificationService(
	codeRepo repositories.VerificationCodeRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) VerificationService {
	return &verificationService{
		codeRepo:      codeRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *verificationService) IssueCode(db *gorm.DB, user *models.User) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	record := &models.VerificationCode{
		UserID:           user.ID,
		Code:             code,
		VerificationType: user.AuthType,
		ExpireTime:       time.Now().Add(models.TTLFor(user.AuthType)),
	}
	if err := s.codeRepo.Create(db, record); err != nil {
		return "", apperrors.InternalError(err)
	}

	if user.AuthType == models.AuthTypeEmail && user.Email != nil {
		s.deliverByEmail(*user.Email, code)
	}

	return code, nil
}

func (s *verificationService) RequestNewCode(db *gorm.DB, user *models.User) error {
	active, err := s.codeRepo.HasActive(db, user.ID, time.Now())
	if err != nil {
		return apperrors.InternalError(err)
	}
	if active {
		return apperrors.ErrCodeStillValid
	}

	_, err = s.IssueCode(db, user)
	return err
}

func (s *verificationService) CheckAndConsume(db *gorm.DB, user *models.User, submitted string) error {
	record, err := s.codeRepo.FindActive(db, user.ID, submitted, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrCodeNotFound) {
			return apperrors.ErrInvalidOrExpiredCode
		}
		return apperrors.InternalError(err)
	}

	if err := s.codeRepo.Confirm(db, record.ID); err != nil {
		// Lost the race against a concurrent submission of the same code.
		if apperrors.Is(err, repositories.ErrCodeAlreadyUsed) {
			return apperrors.ErrInvalidOrExpiredCode
		}
		return apperrors.InternalError(err)
	}

	if user.AuthStage == models.AuthStageNew {
		if err := s.userRepo.UpdateAuthStage(db, user.ID, models.AuthStageCodeVerified); err != nil {
			return apperrors.InternalError(err)
		}
		user.AuthStage = models.AuthStageCodeVerified
	}

	return nil
}

// deliverByEmail is fire-and-forget: a delivery failure is logged but does
// not fail the request, the user can always ask for a new code.
func (s *verificationService) deliverByEmail(to, code string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendCode(to, code); err != nil {
			logger.Error("failed to deliver verification code", "error", err)
		}
	}()
}

// generateCode draws each of the four digits independently from 1-9.
func generateCode() (string, error) {
	digits := make([]byte, codeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(9))
		if err != nil {
			return "", err
		}
		digits[i] = byte('1' + n.Int64())
	}
	return string(digits), nil
}
