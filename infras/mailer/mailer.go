package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	"venue/shared/constant"
)

const otelAttrRecipients = "mail.recipients"

var ErrNoRecipients = errors.New("mail has no recipients")

type Mail struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type resendMailer struct {
	client *resend.Client
	from   string
	otel   otel.Otel
}

// New returns a Resend backed mailer. Without an API key mail is logged and dropped.
func New(cfg *config.Config, otel otel.Otel) Mailer {
	if cfg.External.Mail.APIKey == constant.Empty {
		log.Warn().Msg("Mail API key not configured, outgoing mail will be dropped")

		return &resendMailer{from: cfg.External.Mail.From, otel: otel}
	}

	return &resendMailer{
		client: resend.NewClient(cfg.External.Mail.APIKey),
		from:   cfg.External.Mail.From,
		otel:   otel,
	}
}

func (m *resendMailer) Send(ctx context.Context, mail Mail) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(mail.To) == 0 {
		return ErrNoRecipients
	}

	scope.SetAttribute(otelAttrRecipients, len(mail.To))

	if m.client == nil {
		log.Warn().Strs("to", mail.To).Str("subject", mail.Subject).Msg("mail skipped, no API key")

		return nil
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      mail.To,
		Subject: mail.Subject,
		Html:    mail.HTML,
		Text:    mail.Text,
	})
	if err != nil {
		log.Error().Err(err).Strs("to", mail.To).Str("subject", mail.Subject).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("id", sent.Id).Str("subject", mail.Subject).Msg("mail sent")

	return nil
}
