package email

import (
	"fmt"

	"qost_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendCode(to, code string) error {
	body := fmt.Sprintf(
		"<p>Your qost verification code is <b>%s</b>.</p><p>The code is valid for a few minutes and can be used once.</p>",
		code,
	)
	return p.Send(to, "Your verification code", body)
}
