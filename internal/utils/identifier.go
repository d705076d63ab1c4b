package utils

import (
	"regexp"
	"strings"
)

// IdentifierKind classifies the single free-form field users sign up with.
type IdentifierKind int

const (
	IdentifierUnknown IdentifierKind = iota
	IdentifierPhone
	IdentifierEmail
)

var (
	phoneRegexp = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ClassifyIdentifier decides whether the input is a phone number or an email
// address. Anything else is unknown and rejected at signup.
func ClassifyIdentifier(input string) IdentifierKind {
	input = strings.TrimSpace(input)
	switch {
	case phoneRegexp.MatchString(input):
		return IdentifierPhone
	case emailRegexp.MatchString(strings.ToLower(input)):
		return IdentifierEmail
	default:
		return IdentifierUnknown
	}
}

// MaskPhone keeps the dialing prefix and the last two digits.
func MaskPhone(phone string) string {
	if len(phone) < 7 {
		return phone
	}
	return phone[:4] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-2:]
}

// MaskEmail keeps the first character of the local part and the full domain.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}
