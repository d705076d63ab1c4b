package models

type UserStatus string
type AuthType string
type AuthStage string

const (
	UserStatusAdmin   UserStatus = "admin"
	UserStatusUser    UserStatus = "user"
	UserStatusManager UserStatus = "manager"

	AuthTypePhone AuthType = "via_phone"
	AuthTypeEmail AuthType = "via_email"

	// Account lifecycle: new -> verification_code -> done, with photo_step
	// reached once the user uploads an avatar.
	AuthStageNew          AuthStage = "new"
	AuthStageCodeVerified AuthStage = "verification_code"
	AuthStageDone         AuthStage = "done"
	AuthStagePhotoStep    AuthStage = "photo_step"
)
