// Package mailer sends transactional email through an SMTP relay.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("mailer: smtp credentials not configured")

// Message is a multipart (text + html) email.
type Message struct {
	FromName string
	To       []string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
}

// SMTPSender sends through gomail. The authenticated user is always the From address.
type SMTPSender struct {
	config Config
	dial   func(m *gomail.Message) error
}

func NewSMTPSender(config Config) *SMTPSender {
	s := &SMTPSender{config: config}
	s.dial = func(m *gomail.Message) error {
		d := gomail.NewDialer(config.Host, config.Port, config.User, config.Password)
		return d.DialAndSend(m)
	}
	return s
}

func (s *SMTPSender) Configured() bool {
	return s.config.User != "" && s.config.Password != ""
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("mailer: no recipients")
	}

	m := s.build(msg)

	// gomail has no context support, run the dial so ctx can abandon it
	done := make(chan error, 1)
	go func() {
		done <- s.dial(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mailer: send: %w", ctx.Err())
	}
}

func (s *SMTPSender) build(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.User, msg.FromName)
	m.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	return m
}
