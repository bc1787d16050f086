package mailer

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactRequiresCredentials(t *testing.T) {
	m := NewSMTP(Config{Host: "smtp.example.com", Port: "587"})
	assert.ErrorIs(t, m.SendContact(ContactMessage{Name: "A", Email: "a@example.org"}), ErrNotConfigured)
}

func TestSendContact(t *testing.T) {
	m := NewSMTP(Config{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "pw"})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	require.NoError(t, m.SendContact(ContactMessage{Name: "Sam", Email: "sam@example.org", Message: "Hi!"}))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "me@example.com", gotFrom)
	assert.Equal(t, []string{"me@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Sam\r\n")
	assert.Contains(t, string(gotMsg), "Reply-To: sam@example.org\r\n")
	assert.Contains(t, string(gotMsg), "Hi!")

	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	assert.EqualError(t, m.SendContact(ContactMessage{Name: "Sam", Email: "sam@example.org"}), "refused")
}

func TestValidateRejectsHeaderInjection(t *testing.T) {
	cases := []struct {
		name string
		msg  ContactMessage
	}{
		{"line break in name", ContactMessage{Name: "Bob\r\nBcc: victim@evil.example", Email: "bob@example.org"}},
		{"line break in email", ContactMessage{Name: "Bob", Email: "a@b\r\nBcc: v2@evil.example"}},
		{"display name form", ContactMessage{Name: "Bob", Email: "Bob <bob@example.org>"}},
		{"not an address", ContactMessage{Name: "Bob", Email: "bob"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.msg.Validate(), ErrInvalidMessage)
		})
	}

	assert.NoError(t, ContactMessage{Name: "Bob", Email: "bob@example.org"}.Validate())
}

func TestSendContactRejectsInvalidMessageBeforeSending(t *testing.T) {
	m := NewSMTP(Config{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "pw"})
	called := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	err := m.SendContact(ContactMessage{Name: "Bob\r\nBcc: victim@evil.example", Email: "bob@example.org", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidMessage)
	assert.False(t, called)
}

func TestComposeKeepsHeadersOnOneLine(t *testing.T) {
	raw := string(Compose("me@example.com", "me@example.com", ContactMessage{
		Name:  "Bob\r\nBcc: victim@evil.example",
		Email: "a@b\r\nBcc: v2@evil.example",
	}))

	headers, _, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)

	lines := strings.Split(headers, "\r\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
	}
	assert.Equal(t, "Subject: Portfolio Contact: Bob Bcc: victim@evil.example", lines[1])
}
