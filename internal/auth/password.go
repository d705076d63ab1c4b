package auth

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RawPassword and HashedPassword are distinct types on purpose: a raw
// password can only become a hash through HashPassword, so an already-hashed
// value can never be hashed twice by accident.
type RawPassword string

type HashedPassword string

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password RawPassword) (HashedPassword, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return HashedPassword(bytes), err
}

// Matches reports whether the raw password corresponds to the hash.
func (h HashedPassword) Matches(password RawPassword) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(password)) == nil
}

// ValidatePassword enforces the strength policy: at least 8 characters and
// not digits-only.
func ValidatePassword(password RawPassword) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrPasswordAllDigits
	}
	return nil
}

// GeneratePassword returns a random placeholder password for accounts
// created before profile completion. It is hashed immediately after.
func GeneratePassword() RawPassword {
	id := uuid.NewString()
	return RawPassword(id[strings.LastIndex(id, "-")+1:])
}
