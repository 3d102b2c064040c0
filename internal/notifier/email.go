package notifier

import (
	"bytes"
	"log"
	"text/template"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers a message and reports success. Implementations are
// fire-and-forget collaborators; callers never act on the result beyond
// logging it.
type EmailSender interface {
	Send(to, subject, body string) bool
	SendTemplate(to, subject, templateName string, vars map[string]any) bool
}

// SMTPSender sends mail through an SMTP relay via gomail.
type SMTPSender struct {
	dialer    *gomail.Dialer
	from      string
	templates map[string]*template.Template
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	port := cfg.Port
	if port <= 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPSender{
		dialer:    gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Pass),
		from:      from,
		templates: emailTemplates(),
	}
}

func (s *SMTPSender) Send(to, subject, body string) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("level=error msg=email send failed to=%s err=%v", to, err)
		return false
	}
	log.Printf("level=info msg=email sent to=%s subject=%q", to, subject)
	return true
}

func (s *SMTPSender) SendTemplate(to, subject, templateName string, vars map[string]any) bool {
	tpl, ok := s.templates[templateName]
	if !ok {
		log.Printf("level=error msg=unknown email template name=%s", templateName)
		return false
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, vars); err != nil {
		log.Printf("level=error msg=email template render failed name=%s err=%v", templateName, err)
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", buf.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("level=error msg=email send failed to=%s template=%s err=%v", to, templateName, err)
		return false
	}
	log.Printf("level=info msg=email sent to=%s template=%s", to, templateName)
	return true
}

// LogSender is used when SMTP is not configured: deliveries are logged and
// reported as successful.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) bool {
	log.Printf("level=info msg=email (log only) to=%s subject=%q", to, subject)
	return true
}

func (LogSender) SendTemplate(to, subject, templateName string, vars map[string]any) bool {
	log.Printf("level=info msg=email (log only) to=%s template=%s", to, templateName)
	return true
}

func emailTemplates() map[string]*template.Template {
	src := map[string]string{
		"welcome":               `<p>Hi {{.FirstName}}, your account is ready.</p>`,
		"reservation-created":   `<p>Reservation #{{.ReservationID}} for {{.ServiceName}} on {{.ServiceDate}} was created.</p>`,
		"reservation-confirmed": `<p>Reservation #{{.ReservationID}} was confirmed by {{.TechnicianName}} for {{.ServiceDate}}.</p>`,
		"review-request":        `<p>Reservation #{{.ReservationID}} is complete. How was your experience?</p>`,
		"payment-receipt":       `<p>Payment of {{.Amount}} ({{.Method}}) for reservation #{{.ReservationID}} was received.</p>`,
		"certification-valid":   `<p>Your certification "{{.Name}}" was validated.</p>`,
	}
	out := make(map[string]*template.Template, len(src))
	for name, body := range src {
		out[name] = template.Must(template.New(name).Parse(body))
	}
	return out
}
