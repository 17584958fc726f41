package mailer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"venue/config"
	"venue/infras/mailer"
	"venue/infras/otel/mocks"
)

func TestSend_WithoutAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Mail.From = "Venue <noreply@example.com>"

	m := mailer.New(cfg, mocks.NewOtel())

	err := m.Send(context.Background(), mailer.Mail{To: []string{"guest@example.com"}, Subject: "hello"})
	assert.NoError(t, err)
}

func TestSend_NoRecipients(t *testing.T) {
	m := mailer.New(&config.Config{}, mocks.NewOtel())

	err := m.Send(context.Background(), mailer.Mail{Subject: "hello"})
	assert.ErrorIs(t, err, mailer.ErrNoRecipients)
}
