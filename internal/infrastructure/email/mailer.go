// Package email sends transactional mail over plain SMTP. The only message
// the system sends today is the password-reset link.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/plazaops/property-system/internal/infrastructure/config"
)

// SMTPMailer delivers mail through a single SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

// SendPasswordReset emails the reset link. The context is honoured only up
// front; net/smtp offers no mid-send cancellation.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Password Reset Request\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "%s,\r\n\r\n", greeting)
	b.WriteString("You requested a password reset. Click the link below to reset your password:\r\n\r\n")
	fmt.Fprintf(&b, "%s\r\n\r\n", resetURL)
	b.WriteString("The link expires in one hour. If you did not request a reset, you can safely ignore this email.\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}
