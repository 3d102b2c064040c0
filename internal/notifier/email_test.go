package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSMTPSenderPortAndFrom(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{
		Host: "smtp.example.com",
		Port: 2525,
		User: "mailer@example.com",
		Pass: "secret",
	})

	assert.Equal(t, "smtp.example.com", s.dialer.Host)
	assert.Equal(t, 2525, s.dialer.Port)
	assert.Equal(t, "mailer@example.com", s.from, "from falls back to the user")
}

func TestNewSMTPSenderDefaultsPort(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{
		Host: "smtp.example.com",
		From: "noreply@example.com",
	})

	assert.Equal(t, 587, s.dialer.Port)
	assert.Equal(t, "noreply@example.com", s.from)
}

func TestLogSenderAlwaysSucceeds(t *testing.T) {
	var s LogSender
	assert.True(t, s.Send("a@b.c", "subject", "body"))
	assert.True(t, s.SendTemplate("a@b.c", "subject", "welcome", nil))
}

func TestEmailTemplatesParse(t *testing.T) {
	tpls := emailTemplates()
	for _, name := range []string{
		"welcome", "reservation-created", "reservation-confirmed",
		"review-request", "payment-receipt", "certification-valid",
	} {
		assert.Contains(t, tpls, name)
	}
}
