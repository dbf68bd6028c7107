package mailer

import (
	"bytes"
	"context"
	"html/template"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send sends an email via Mailgun. html is optional; if provided it is used as the HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// SendWelcome sends the signup welcome email.
func (m *Mailgun) SendWelcome(ctx context.Context, to, username string) error {
	html, err := renderWelcome(username)
	if err != nil {
		return err
	}
	return m.Send(ctx, to, "Welcome to Todo App", "Welcome, "+username+"!", html)
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, {{.Username}}!</h2>
    <p>Your account has been created. Sign in and start organizing your day.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this account, you can ignore this email.</p>
  </body>
</html>`))

func renderWelcome(username string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTmpl.Execute(&buf, struct{ Username string }{Username: username})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
