package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Attachment is an in-memory file sent along with a message.
type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer sends a message and returns its Message-ID.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	cfg    Config
	sender sender
}

// NewSMTPMailer dials the SMTP server for every message; Gmail drops idle connections quickly.
func NewSMTPMailer(cfg Config) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg *Message) (string, error) {
	if msg == nil || strings.TrimSpace(msg.To) == "" {
		return "", fmt.Errorf("mail recipient is required")
	}
	if m.cfg.Username == "" {
		return "", fmt.Errorf("mail sender is not configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	gm, id := m.build(msg)
	if err := m.sender.DialAndSend(gm); err != nil {
		return "", fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return id, nil
}

func (m *smtpMailer) build(msg *Message) (*gomail.Message, string) {
	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(m.cfg.Username))

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.cfg.Username, m.cfg.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("Message-ID", id)
	gm.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		gm.Attach(a.FileName, settings...)
	}
	return gm, id
}

func domainOf(address string) string {
	if i := strings.LastIndex(address, "@"); i >= 0 && i < len(address)-1 {
		return address[i+1:]
	}
	return "localhost"
}
