package service

import (
	"context"
	"fmt"
	"learning_portal_backend/internal/config"
	"learning_portal_backend/pkg/logger"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// Email is a plain text message to a single recipient.
type Email struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SendgridMailer delivers mail through the SendGrid v3 API.
type SendgridMailer struct {
	key  string
	from *sgmail.Email
}

var _ Mailer = (*SendgridMailer)(nil)

func NewSendgridMailer(cfg *config.MailConfig) *SendgridMailer {
	return &SendgridMailer{
		key:  cfg.SendgridAPIKey,
		from: sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (m *SendgridMailer) prepare(email Email) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = email.Subject
	p.AddTos(sgmail.NewEmail(email.ToName, email.To))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(sgmail.NewContent("text/plain", email.Body))
	return msg
}

func (m *SendgridMailer) Send(ctx context.Context, email Email) error {
	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(email))

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

// LogMailer writes mail to the application log instead of sending it.
// Bodies carry reset links, so they only appear at debug level.
type LogMailer struct{}

var _ Mailer = LogMailer{}

func (LogMailer) Send(ctx context.Context, email Email) error {
	logger.Log.Info("Email (log provider)",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("body_bytes", len(email.Body)),
	)
	if ce := logger.Log.Check(zap.DebugLevel, "Email body (log provider)"); ce != nil {
		ce.Write(zap.String("to", email.To), zap.String("body", email.Body))
	}
	return nil
}

func NewMailer(cfg *config.MailConfig) Mailer {
	if cfg.Provider == "sendgrid" {
		if cfg.SendgridAPIKey == "" {
			logger.Log.Warn("mail.provider is sendgrid but no API key is set, falling back to log mailer")
			return LogMailer{}
		}
		return NewSendgridMailer(cfg)
	}
	return LogMailer{}
}
