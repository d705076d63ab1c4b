package integration

import (
	"net/http"
	"testing"

	"qost_backend/internal/models"
	"qost_backend/internal/services/dto"
	"qost_backend/pkg/apperrors"
	"qost_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUp_PhoneLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// 1. Register with a phone number.
	signedUp := signUp(t, ts, "+998901234567")
	assert.Equal(t, models.AuthTypePhone, signedUp.AuthType)
	assert.Equal(t, models.AuthStageNew, signedUp.AuthStage)
	assert.Equal(t, "+998*******67", signedUp.Phone)
	assert.NotEmpty(t, signedUp.AccessToken)
	assert.NotEmpty(t, signedUp.RefreshToken)

	// 2. Confirm the verification code.
	code := ts.LatestCodeFor(t, signedUp.ID)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users/code", signedUp.AccessToken, map[string]string{
		"code": code,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var confirmed dto.ConfirmCodeResponse
	helpers.DecodeJSON(t, body, &confirmed)
	assert.Equal(t, "Success", confirmed.Status)
	assert.NotEmpty(t, confirmed.AccessToken)

	// 3. Complete the profile.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/users/me", confirmed.AccessToken, map[string]string{
		"first_name":       "Aziz",
		"last_name":        "Karimov",
		"username":         "aziz_k",
		"password":         "abc12345",
		"confirm_password": "abc12345",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var completed dto.CompleteProfileResponse
	helpers.DecodeJSON(t, body, &completed)
	assert.Equal(t, models.AuthStageDone, completed.AuthStage)

	// 4. Upload an avatar, reaching the final stage.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/users/me/photo", confirmed.AccessToken, map[string]string{
		"avatar": "avatars/aziz.png",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var photo dto.CompleteProfileResponse
	helpers.DecodeJSON(t, body, &photo)
	assert.Equal(t, models.AuthStagePhotoStep, photo.AuthStage)

	// 5. The chosen credentials now log in.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": "aziz_k",
		"password":   "abc12345",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestSignUp_EmailIsMaskedAndLowercased(t *testing.T) {
	ts := helpers.NewTestServer(t)

	signedUp := signUp(t, ts, "Aziz.Karimov@Example.COM")
	assert.Equal(t, models.AuthTypeEmail, signedUp.AuthType)
	assert.Equal(t, "a***********@example.com", signedUp.Email)
	assert.Empty(t, signedUp.Phone)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "id = ?", signedUp.ID).Error)
	require.NotNil(t, user.Email)
	assert.Equal(t, "aziz.karimov@example.com", *user.Email)
}

func TestSignUp_RejectsBadIdentifier(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"email_or_phone": "definitely-not-valid",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var errResp apperrors.ErrorResponse
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Fail", errResp.Status)
	assert.Equal(t, apperrors.CodeUnrecognizedIdentifier, errResp.Code)
}

func TestSignUp_DuplicateIdentifierConflicts(t *testing.T) {
	ts := helpers.NewTestServer(t)

	signUp(t, ts, "+998901234567")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"email_or_phone": "+998901234567",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode, body)

	var errResp apperrors.ErrorResponse
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, apperrors.CodeDuplicateIdentity, errResp.Code)
}

func TestSignUp_ValidationFailure(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/users", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var errResp apperrors.ErrorResponse
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, apperrors.CodeValidationFailed, errResp.Code)
}

func TestCompleteProfile_PasswordMismatchOverHTTP(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, confirmed := verifiedUser(t, ts, "+998901234567")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me", confirmed.AccessToken, map[string]string{
		"first_name":       "Aziz",
		"last_name":        "Karimov",
		"username":         "aziz_k",
		"password":         "abc12345",
		"confirm_password": "different1",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var errResp apperrors.ErrorResponse
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, apperrors.CodePasswordMismatch, errResp.Code)
}

func TestProfileEndpoints_RequireAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me", "", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/users/code", "garbage-token", map[string]string{
		"code": "1234",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
