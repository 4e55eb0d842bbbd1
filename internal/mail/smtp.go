package mail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender sends Messages through an authenticated SMTP account.
// It is safe for concurrent use; each Send dials its own connection, so
// the confirmation fan-out can run sends in parallel.
type SMTPSender struct {
	client *gomail.Client
}

// NewSMTPSender builds an SMTPSender for the given account.
// Port 465 uses implicit TLS (the common submission setup for Gmail);
// any other port negotiates STARTTLS and refuses to continue without it.
func NewSMTPSender(host string, port int, username, password string) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if port == 465 {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSMTPSender: %w", err)
	}
	return &SMTPSender{client: client}, nil
}

// Send delivers one message. The context deadline bounds the whole dial +
// send exchange; a timeout surfaces as a send failure.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()

	if err := m.FromFormat(msg.From.Name, msg.From.Email); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: from: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	for _, a := range msg.Attachments {
		if err := m.EmbedReader(a.Filename, bytes.NewReader(a.Content)); err != nil {
			return fmt.Errorf("mail.SMTPSender.Send: embed %s: %w", a.Filename, err)
		}
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: %w", err)
	}
	return nil
}
