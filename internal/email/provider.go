package email

// Provider delivers mail to users. The verification flow only needs
// SendCode; Send exists for everything else (announcements, resets).
type Provider interface {
	// Send delivers a simple HTML message.
	Send(to, subject, htmlBody string) error

	// SendCode delivers a verification code to the address.
	SendCode(to, code string) error
}
