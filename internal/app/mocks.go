package app

import "qost_backend/internal/logger"

// MockEmailProvider logs instead of sending. Used when SMTP is not
// configured and by the test suite.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, htmlBody string) error {
	logger.Info("[mock email] send", "to", to, "subject", subject)
	return nil
}

func (m *MockEmailProvider) SendCode(to, code string) error {
	logger.Info("[mock email] verification code", "to", to, "code", code)
	return nil
}
