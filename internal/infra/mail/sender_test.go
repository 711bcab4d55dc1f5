package mail

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestSendBuildsPlainTextMessage(t *testing.T) {
	d := &fakeDialer{}
	s := NewEmailSenderWithDialer(d, "sales@acme.test", nil)

	require.NoError(t, s.Send("Hello", "Body text", "", "buyer@lead.test"))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"sales@acme.test"}, m.GetHeader("From"))
	assert.Equal(t, []string{"buyer@lead.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, m.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err := m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Body text")
	assert.Contains(t, raw.String(), "text/plain")
}

func TestSendExplicitFromWins(t *testing.T) {
	d := &fakeDialer{}
	s := NewEmailSenderWithDialer(d, "sales@acme.test", nil)

	require.NoError(t, s.Send("s", "b", "owner@acme.test", "buyer@lead.test"))
	assert.Equal(t, []string{"owner@acme.test"}, d.sent[0].GetHeader("From"))
}

func TestSendWrapsDialerError(t *testing.T) {
	smtpErr := errors.New("535 authentication failed")
	s := NewEmailSenderWithDialer(&fakeDialer{err: smtpErr}, "sales@acme.test", nil)

	err := s.Send("s", "b", "", "buyer@lead.test")
	require.Error(t, err)
	assert.ErrorIs(t, err, smtpErr)
}

func TestSendRequiresRecipient(t *testing.T) {
	d := &fakeDialer{}
	s := NewEmailSenderWithDialer(d, "sales@acme.test", nil)

	assert.ErrorIs(t, s.Send("s", "b", "", "  "), ErrMissingRecipient)
	assert.Empty(t, d.sent)
}

func TestNewEmailSenderDefaultsFromToUser(t *testing.T) {
	s := NewEmailSender(Config{Host: "smtp.test", Port: 587, User: "bot@acme.test"}, nil)
	assert.Equal(t, "bot@acme.test", s.From())
}
