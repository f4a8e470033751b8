package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// Security selects how the SMTP connection is protected. With starttls the
// connection is upgraded whenever the server offers it.
type Security string

const (
	SecuritySTARTTLS Security = "starttls"
	SecurityTLS      Security = "tls"
)

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host     string   `yaml:"host"`
	Port     int      `yaml:"port"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	From     string   `yaml:"from"`
	Security Security `yaml:"security"`
}

// ErrNoRecipient indicates a message without a To address.
var ErrNoRecipient = errors.New("message has no recipient")

// dialer is the part of gomail.Dialer the sender uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends messages through an SMTP server. There is no retry: a
// failed send is returned to the caller.
type SMTPSender struct {
	config SMTPConfig
	dialer dialer
	logger *zap.Logger
}

// NewSMTPSender creates a sender for the given server settings.
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) *SMTPSender {
	if logger == nil {
		logger = zap.NewNop()
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	switch cfg.Security {
	case SecurityTLS:
		d.SSL = true
	default:
		d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	}

	return &SMTPSender{
		config: cfg,
		dialer: d,
		logger: logger,
	}
}

// Send delivers msg as an HTML email.
func (s *SMTPSender) Send(ctx context.Context, msg models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return ErrNoRecipient
	}

	m := NewMessage(s.config.From, msg)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", msg.Subject, msg.To, err)
	}

	s.logger.Info("email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

// NewMessage builds the gomail message for msg.
func NewMessage(from string, msg models.Message) *gomail.Message {
	m := gomail.NewMessage()
	if from != "" {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	return m
}
