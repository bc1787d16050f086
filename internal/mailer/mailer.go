package mailer

import (
	"errors"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotConfigured  = errors.New("SMTP credentials not configured")
	ErrInvalidMessage = errors.New("invalid contact message")
)

type Config struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

// ContactMessage is a submission of the portfolio contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Validate rejects a name with line breaks and anything but a bare email address.
func (m ContactMessage) Validate() error {
	if strings.ContainsAny(m.Name, "\r\n") {
		return fmt.Errorf("%w: name contains a line break", ErrInvalidMessage)
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return fmt.Errorf("%w: bad email address %q", ErrInvalidMessage, m.Email)
	}
	return nil
}

type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTP struct {
	cfg  Config
	send SendFunc
}

func NewSMTP(cfg Config) *SMTP {
	return &SMTP{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTP) SendContact(msg ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return ErrNotConfigured
	}

	to := m.cfg.ToEmail
	if to == "" {
		to = m.cfg.User
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{to}, Compose(m.cfg.User, to, msg)); err != nil {
		log.Error().Err(err).Msg("error sending contact email")
		return err
	}

	log.Info().Str("name", msg.Name).Msg("contact email sent")
	return nil
}

var headerBreaks = strings.NewReplacer("\r", "", "\n", " ")

// headerValue keeps a value on a single header line.
func headerValue(v string) string {
	return headerBreaks.Replace(v)
}

// Compose builds the RFC 822 message relayed to the site owner.
func Compose(from, to string, msg ContactMessage) []byte {
	subject := headerValue(fmt.Sprintf("Portfolio Contact: %s", msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerValue(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
