package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"

	"hotel/config"
)

const (
	TemplateBookingConfirmed = "booking_confirmed.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Message struct {
	To       string
	Subject  string
	Template string
	Data     any
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type mailerImpl struct {
	config *config.Config
	dialer *gomail.Dialer
}

func New(config *config.Config) Mailer {
	dialer := gomail.NewDialer(config.Mail.Host, config.Mail.Port, config.Mail.Username, config.Mail.Password)
	dialer.TLSConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: config.Mail.Host,
	}

	return &mailerImpl{
		config: config,
		dialer: dialer,
	}
}

// Render executes the named embedded template.
func Render(name string, data any) (string, error) {
	var body bytes.Buffer

	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", name, err)
	}

	return body.String(), nil
}

func (m *mailerImpl) Send(ctx context.Context, message Message) error {
	if !m.config.Mail.Enable {
		log.Debug().Str("to", message.To).Msg("Mail disabled, skipping")

		return nil
	}

	body, err := Render(message.Template, message.Data)
	if err != nil {
		log.Error().Err(err).Str("template", message.Template).Msg("Failed to render email")

		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.Mail.From)
	msg.SetHeader("To", message.To)
	msg.SetHeader("Subject", message.Subject)
	msg.SetBody("text/html", body)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", message.To).Msg("Failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", message.To).Str("subject", message.Subject).Msg("Email sent")

	return nil
}
