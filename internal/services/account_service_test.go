package services

import (
	"strings"
	"testing"
	"time"

	"qost_backend/internal/auth"
	"qost_backend/internal/models"
	"qost_backend/internal/services/dto"
	"qost_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_WithPhone(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.accounts.SignUp(env.db, "+998901234567")
	require.NoError(t, err)

	assert.Equal(t, models.AuthTypePhone, resp.AuthType)
	assert.Equal(t, models.AuthStageNew, resp.AuthStage)
	assert.Equal(t, "+998*******67", resp.Phone)
	assert.Empty(t, resp.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	user, err := env.userRepo.FindByID(env.db, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "+998901234567", *user.Phone)
	assert.True(t, strings.HasPrefix(user.Username, "qost-"))
	assert.NotEmpty(t, user.PasswordHash)

	code := env.latestCode(t, user.ID)
	assert.Len(t, code.Code, 4)
	assert.WithinDuration(t, time.Now().Add(models.PhoneCodeTTL), code.ExpireTime, 5*time.Second)
}

func TestSignUp_WithEmail(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.accounts.SignUp(env.db, "User@Example.COM")
	require.NoError(t, err)

	assert.Equal(t, models.AuthTypeEmail, resp.AuthType)
	assert.Empty(t, resp.Phone)
	assert.Equal(t, "u***@example.com", resp.Email)

	user, err := env.userRepo.FindByID(env.db, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	// Stored lowercased so the unique index catches case variants.
	assert.Equal(t, "user@example.com", *user.Email)
}

func TestSignUp_RejectsUnrecognizedIdentifier(t *testing.T) {
	env := newTestEnv(t)

	for _, input := range []string{"not-an-identifier", "123", "user@", ""} {
		_, err := env.accounts.SignUp(env.db, input)
		assert.ErrorIs(t, err, apperrors.ErrUnrecognizedIdentifier, "input %q", input)
	}
}

func TestSignUp_RejectsDuplicateIdentifier(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.SignUp(env.db, "+998901234567")
	require.NoError(t, err)

	_, err = env.accounts.SignUp(env.db, "+998901234567")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)

	_, err = env.accounts.SignUp(env.db, "dup@example.com")
	require.NoError(t, err)

	_, err = env.accounts.SignUp(env.db, "dup@example.com")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
}

func TestConfirmCode_IssuesFreshPair(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.accounts.SignUp(env.db, "+998901234567")
	require.NoError(t, err)

	code := env.latestCode(t, resp.ID)
	pair, err := env.accounts.ConfirmCode(env.db, resp.ID, code.Code)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	user, err := env.userRepo.FindByID(env.db, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AuthStageCodeVerified, user.AuthStage)
}

func TestConfirmCode_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.ConfirmCode(env.db, "no-such-user", "1234")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRequestNewCode_ThroughAccountService(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.accounts.SignUp(env.db, "+998901234567")
	require.NoError(t, err)

	// Signup already issued a code that is still valid.
	err = env.accounts.RequestNewCode(env.db, resp.ID)
	assert.ErrorIs(t, err, apperrors.ErrCodeStillValid)
}

func TestCompleteProfile_Success(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedPhoneUser(t, "+998901234567", models.AuthStageCodeVerified, "placeholder")

	stage, err := env.accounts.CompleteProfile(env.db, user.ID, &dto.CompleteProfileRequest{
		FirstName:       "Aziz",
		LastName:        "Karimov",
		Username:        "aziz_k",
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStageDone, stage)

	stored, err := env.userRepo.FindByID(env.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aziz_k", stored.Username)
	assert.Equal(t, "Aziz", stored.FirstName)
	assert.Equal(t, models.AuthStageDone, stored.AuthStage)
	assert.True(t, auth.HashedPassword(stored.PasswordHash).Matches("abc12345"))
}

func TestCompleteProfile_PasswordMismatch(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedPhoneUser(t, "+998901234567", models.AuthStageCodeVerified, "placeholder")

	_, err := env.accounts.CompleteProfile(env.db, user.ID, &dto.CompleteProfileRequest{
		FirstName:       "Aziz",
		LastName:        "Karimov",
		Username:        "aziz_k",
		Password:        "abc12345",
		ConfirmPassword: "abc12346",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	stored, err := env.userRepo.FindByID(env.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, stored.Username)
	assert.Equal(t, models.AuthStageCodeVerified, stored.AuthStage)
}

func TestCompleteProfile_WeakPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedPhoneUser(t, "+998901234567", models.AuthStageCodeVerified, "placeholder")

	for _, password := range []string{"short1", "12345678"} {
		_, err := env.accounts.CompleteProfile(env.db, user.ID, &dto.CompleteProfileRequest{
			FirstName:       "Aziz",
			LastName:        "Karimov",
			Username:        "aziz_k",
			Password:        password,
			ConfirmPassword: password,
		})
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "password %q", password)
	}
}

func TestCompleteProfile_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.seedPhoneUser(t, "+998901111111", models.AuthStageDone, "placeholder")
	user := env.seedPhoneUser(t, "+998902222222", models.AuthStageCodeVerified, "placeholder")

	taken, err := env.userRepo.FindByIdentifier(env.db, "+998901111111")
	require.NoError(t, err)

	_, err = env.accounts.CompleteProfile(env.db, user.ID, &dto.CompleteProfileRequest{
		FirstName:       "Aziz",
		LastName:        "Karimov",
		Username:        taken.Username,
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateIdentity)
}

func TestUpdateAvatar_MovesDoneToPhotoStep(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedPhoneUser(t, "+998901234567", models.AuthStageDone, "placeholder")

	stage, err := env.accounts.UpdateAvatar(env.db, user.ID, "avatars/aziz.png")
	require.NoError(t, err)
	assert.Equal(t, models.AuthStagePhotoStep, stage)

	stored, err := env.userRepo.FindByID(env.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "avatars/aziz.png", stored.Avatar)
}

func TestUpdateAvatar_KeepsEarlierStage(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedPhoneUser(t, "+998901234567", models.AuthStageCodeVerified, "placeholder")

	stage, err := env.accounts.UpdateAvatar(env.db, user.ID, "avatars/early.png")
	require.NoError(t, err)
	assert.Equal(t, models.AuthStageCodeVerified, stage)
}
