package services

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"taskboard/internal/config"
)

type EmailService interface {
	SendWelcomeEmail(email, name string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns nil when SMTP is not configured; callers skip mail in that case.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if !cfg.Enabled() {
		return nil
	}
	return &emailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	if err := s.dialer.DialAndSend(welcomeMessage(s.from, email, name)); err != nil {
		return fmt.Errorf("send welcome email to %s: %w", email, err)
	}
	return nil
}

const welcomeSubject = "Your Taskboard account is ready"

func welcomeMessage(from, to, name string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", welcomeSubject)

	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour Taskboard account (%s) is active. Tasks assigned to you show up on your board "+
			"as soon as a teammate creates them.\n", name, to))
	m.AddAlternative("text/html", fmt.Sprintf(
		`<p>Hi %s,</p><p>Your Taskboard account (<b>%s</b>) is active. Tasks assigned to you show up on your board as soon as a teammate creates them.</p>`,
		html.EscapeString(name), html.EscapeString(to)))
	return m
}
