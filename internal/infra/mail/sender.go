package mail

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var ErrMissingRecipient = errors.New("missing recipient address")

// Dialer is the part of gomail.Dialer the sender needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	dialer Dialer
	from   string
	log    *zap.Logger
}

func NewEmailSender(cfg Config, log *zap.Logger) *EmailSender {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return NewEmailSenderWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), from, log)
}

func NewEmailSenderWithDialer(d Dialer, from string, log *zap.Logger) *EmailSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailSender{dialer: d, from: from, log: log}
}

// From is the configured sender address.
func (s *EmailSender) From() string {
	return s.from
}

// Send delivers a single plain-text email. An empty from falls back to the
// configured address.
func (s *EmailSender) Send(subject, body, from, to string) error {
	if from == "" {
		from = s.from
	}
	msg, err := buildMessage(Message{From: from, To: to, Subject: subject, Body: body})
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.log.Error("smtp send failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send email via smtp: %w", err)
	}

	s.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func buildMessage(in Message) (*gomail.Message, error) {
	if strings.TrimSpace(in.To) == "" {
		return nil, ErrMissingRecipient
	}

	m := gomail.NewMessage()
	if in.From != "" {
		m.SetHeader("From", in.From)
	}
	m.SetHeader("To", in.To)
	m.SetHeader("Subject", in.Subject)
	m.SetBody("text/plain", in.Body)
	return m, nil
}
