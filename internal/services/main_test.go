package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"qost_backend/internal/auth"
	"qost_backend/internal/database"
	"qost_backend/internal/models"
	"qost_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with the full schema.
// The DSN is unique per call so parallel tests never share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// recordingEmailProvider captures outgoing mail instead of sending it.
// SendCode runs on a background goroutine, hence the mutex.
type recordingEmailProvider struct {
	mu    sync.Mutex
	codes []string
}

func (p *recordingEmailProvider) Send(to, subject, htmlBody string) error {
	return nil
}

func (p *recordingEmailProvider) SendCode(to, code string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codes = append(p.codes, code)
	return nil
}

type testEnv struct {
	db           *gorm.DB
	userRepo     repositories.UserRepository
	codeRepo     repositories.VerificationCodeRepository
	refreshRepo  repositories.RefreshTokenRepository
	tokens       *auth.TokenManager
	emails       *recordingEmailProvider
	verification VerificationService
	authService  AuthService
	accounts     AccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := openTestDB(t)

	userRepo := repositories.NewUserRepository()
	codeRepo := repositories.NewVerificationCodeRepository()
	refreshRepo := repositories.NewRefreshTokenRepository()
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	emails := &recordingEmailProvider{}

	verification := NewVerificationService(codeRepo, userRepo, emails)
	authService := NewAuthService(userRepo, refreshRepo, tokens)
	accounts := NewAccountService(userRepo, verification, authService)

	return &testEnv{
		db:           db,
		userRepo:     userRepo,
		codeRepo:     codeRepo,
		refreshRepo:  refreshRepo,
		tokens:       tokens,
		emails:       emails,
		verification: verification,
		authService:  authService,
		accounts:     accounts,
	}
}

// seedPhoneUser inserts a phone-channel user directly, bypassing the signup
// flow, so individual service methods can be tested in isolation.
func (e *testEnv) seedPhoneUser(t *testing.T, phone string, stage models.AuthStage, password auth.RawPassword) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     "qost-" + uuid.NewString()[:8],
		Phone:        &phone,
		PasswordHash: string(hashed),
		UserStatus:   models.UserStatusUser,
		AuthType:     models.AuthTypePhone,
		AuthStage:    stage,
	}
	require.NoError(t, e.userRepo.Create(e.db, user))
	return user
}

// latestCode reads the most recently issued code for a user straight from
// storage, standing in for the SMS or email the user would receive.
func (e *testEnv) latestCode(t *testing.T, userID string) *models.VerificationCode {
	t.Helper()

	var code models.VerificationCode
	err := e.db.Where("user_id = ?", userID).Order("created_at DESC").First(&code).Error
	require.NoError(t, err)
	return &code
}
