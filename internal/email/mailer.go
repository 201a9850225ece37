package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Sender delivers plain-text mail. The SMTP implementation is used when the
// host is configured; otherwise delivery is a logged no-op so the API works
// without a mail account.
type Sender interface {
	Send(to string, subject string, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

func NewSender(cfg SMTPConfig) Sender {
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.From = strings.TrimSpace(cfg.From)
	if cfg.Host == "" || cfg.From == "" {
		slog.Info("mailer disabled; SMTP host or from address missing")
		return &noopSender{}
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}

	slog.Info("mailer enabled", "host", cfg.Host, "port", cfg.Port, "from", cfg.From)
	return &smtpSender{cfg: cfg}
}

type noopSender struct{}

func (n *noopSender) Send(to string, subject string, _ string) error {
	slog.Debug("mail skipped", "to", to, "subject", subject)
	return nil
}

type smtpSender struct {
	cfg SMTPConfig
}

func (s *smtpSender) Send(to string, subject string, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.cfg.From, to, subject, body))

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
