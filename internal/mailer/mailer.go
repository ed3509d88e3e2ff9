package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/codehire/codehire-api/internal/config"
)

// Sender delivers one-time codes out-of-band. The SMTP implementation is the
// only production sender; tests substitute their own.
type Sender interface {
	SendOTP(ctx context.Context, to, code string, expiryMinutes int) error
}

// SMTPSender sends OTP emails through a configured SMTP relay
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendOTP delivers the verification code. Fails fast when the relay is not
// configured instead of timing out against an empty host.
func (s *SMTPSender) SendOTP(ctx context.Context, to, code string, expiryMinutes int) error {
	if !s.cfg.Configured() {
		return fmt.Errorf("email is not configured: set SMTP_HOST, SMTP_USER, SMTP_PASS")
	}

	msg := buildOTPMessage(s.cfg.From, to, code, expiryMinutes)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.cfg.Address(), auth, envelopeAddress(s.cfg.From), []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send otp email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("otp email delivery aborted: %w", ctx.Err())
	}
}

func buildOTPMessage(from, to, code string, expiryMinutes int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Your CodeHire AI verification code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Your CodeHire AI verification code is: %s\r\n", code)
	fmt.Fprintf(&b, "It expires in %d minutes.\r\n", expiryMinutes)
	b.WriteString("If you didn't request this, you can ignore this email.\r\n")
	return []byte(b.String())
}

// envelopeAddress extracts the bare address from a "Name <addr>" header value
func envelopeAddress(from string) string {
	if i := strings.Index(from, "<"); i >= 0 {
		if j := strings.Index(from[i:], ">"); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}
