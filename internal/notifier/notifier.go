package notifier

import (
	"log"
	"time"
)

// Notifier bundles the outbound side-effect collaborators: email through an
// EmailSender, push and SMS as log-only channels, and the audit trail.
// Every method is fire-and-forget; callers log the boolean and move on.
type Notifier struct {
	Email EmailSender
}

func New(email EmailSender) *Notifier {
	if email == nil {
		email = LogSender{}
	}
	return &Notifier{Email: email}
}

// SendPush records a push-style notification for an actor. There is no real
// push transport behind it.
func (n *Notifier) SendPush(actorID int64, title, body string) bool {
	log.Printf("level=info msg=push actor_id=%d title=%q body=%q", actorID, title, body)
	return true
}

// SendSMS records an SMS-style notification. Empty phone numbers are skipped.
func (n *Notifier) SendSMS(phone, body string) bool {
	if phone == "" {
		return false
	}
	log.Printf("level=info msg=sms phone=%s body=%q", phone, body)
	return true
}

// LogAction writes an audit trail entry.
func (n *Notifier) LogAction(actorID int64, action, details string) {
	log.Printf("level=info msg=audit actor_id=%d action=%s details=%q ts=%s",
		actorID, action, details, time.Now().Format(time.RFC3339))
}
