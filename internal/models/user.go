package models

import "fmt"

type User struct {
	BaseModel
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	Phone        *string `gorm:"uniqueIndex" json:"phone,omitempty"`
	Email        *string `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Bio          string  `gorm:"type:text" json:"bio"`
	Avatar       string  `json:"avatar"`

	UserStatus UserStatus `gorm:"type:varchar(20);default:'user'" json:"user_status"`
	AuthType   AuthType   `gorm:"type:varchar(20);not null" json:"auth_type"`
	AuthStage  AuthStage  `gorm:"type:varchar(30);default:'new'" json:"auth_stats"`

	// Relations
	VerificationCodes []VerificationCode `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RefreshTokens     []RefreshToken     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Posts             []Post             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments          []Comment          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// Identifier returns whichever contact the account was registered with.
func (u *User) Identifier() string {
	if u.AuthType == AuthTypePhone && u.Phone != nil {
		return *u.Phone
	}
	if u.Email != nil {
		return *u.Email
	}
	return u.Username
}
