package service

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/abdul8704/Cookify-server/config"
	"github.com/abdul8704/Cookify-server/internal/logger"
)

// EmailSender delivers transactional mail. The interface exists so tests can
// capture messages instead of talking to an SMTP server.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPEmailService sends mail through a plain-auth SMTP relay.
type SMTPEmailService struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPEmailService(cfg *config.Config) *SMTPEmailService {
	return &SMTPEmailService{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUsername,
		pass: cfg.SMTPPassword,
		from: cfg.EmailFrom,
	}
}

func (s *SMTPEmailService) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		s.from, to, subject, body))

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		logger.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
