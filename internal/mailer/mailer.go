// Package mailer delivers transactional email for the auth flows.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
)

// Mailer sends a single HTML message.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
}

// NewSMTP constructs an SMTP-backed mailer.
func NewSMTP(host, port, user, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass}
}

// Send delivers an HTML message from the configured account.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.user, to, subject, htmlBody)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer logs instead of sending. Used in tests and when SMTP is not
// configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(to, subject, _ string) error {
	if m.Logger != nil {
		m.Logger.Info("mail suppressed, SMTP not configured",
			slog.String("to", to), slog.String("subject", subject))
	}
	return nil
}
