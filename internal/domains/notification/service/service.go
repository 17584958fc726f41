package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"venue/config"
	"venue/infras/kafka"
	"venue/infras/mailer"
	"venue/infras/otel"
	"venue/internal/domains/notification/model/dto"
	"venue/shared/constant"
)

const (
	subjectInquiryCustomer = "We received your inquiry"
	subjectMenuCustomer    = "Menu submitted, thank you!"
	subjectMenuStaff       = "Customer submitted menu selections"
)

// Recipients resolves the staff distribution list for a notification purpose.
type Recipients interface {
	EnabledEmails(ctx context.Context, purpose string) []string
}

// Notification dispatches e-mail without blocking the caller. Delivery
// failures are logged and never returned.
type Notification interface {
	InquiryReceived(ctx context.Context, payload dto.InquiryPayload)
	MenuSubmitted(ctx context.Context, payload dto.MenuSubmittedPayload)
	// Deliver sends one queued mail. It is the Kafka consumer handler.
	Deliver(ctx context.Context, message kafkaGo.Message) error
}

type serviceImpl struct {
	recipients Recipients
	mailer     mailer.Mailer
	kafka      kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(recipients Recipients, mailer mailer.Mailer, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		recipients: recipients,
		mailer:     mailer,
		kafka:      kafka,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) InquiryReceived(ctx context.Context, payload dto.InquiryPayload) {
	ctx = context.WithoutCancel(ctx)

	go s.compose(ctx, payload.BookingID, []string{payload.Email}, subjectInquiryCustomer, templateInquiryCustomer, payload)

	go func() {
		staff := s.recipients.EnabledEmails(ctx, constant.NotificationPurposeNewInquiry)
		subject := fmt.Sprintf("New Inquiry: %s (%s → %s)", payload.EventType, payload.StartDate, payload.EndDate)

		s.compose(ctx, payload.BookingID, staff, subject, templateInquiryStaff, payload)
	}()
}

func (s *serviceImpl) MenuSubmitted(ctx context.Context, payload dto.MenuSubmittedPayload) {
	ctx = context.WithoutCancel(ctx)

	go s.compose(ctx, payload.BookingID, []string{payload.CustomerEmail}, subjectMenuCustomer, templateMenuCustomer, payload)

	go func() {
		staff := s.recipients.EnabledEmails(ctx, constant.NotificationPurposeMenuSubmitted)

		s.compose(ctx, payload.BookingID, staff, subjectMenuStaff, templateMenuStaff, payload)
	}()
}

func (s *serviceImpl) compose(ctx context.Context, bookingID string, to []string, subject, templateName string, data any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification."+templateName)
	defer scope.End()

	if len(to) == 0 {
		log.Warn().Str("booking_id", bookingID).Str("template", templateName).Msg("no recipients, notification skipped")

		return
	}

	html, err := render(templateName, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to render notification")

		return
	}

	mail := mailer.Mail{To: to, Subject: subject, HTML: html}

	if err = s.dispatch(ctx, bookingID, mail); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Str("template", templateName).Msg("failed to dispatch notification")

		return
	}

	log.Info().Str("booking_id", bookingID).Str("template", templateName).Int("recipients", len(to)).Msg("notification dispatched")
}

func (s *serviceImpl) dispatch(ctx context.Context, bookingID string, mail mailer.Mail) error {
	if s.cfg.Notification.Transport != constant.NotificationTransportKafka {
		return s.mailer.Send(ctx, mail) //nolint:wrapcheck
	}

	return s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Notification, kafka.Message{ //nolint:wrapcheck
		Key:   bookingID,
		Value: mail,
	})
}

func (s *serviceImpl) Deliver(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Deliver")
	defer scope.End()

	mail, err := kafka.Decode[mailer.Mail](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", string(message.Key)).Msg("dropping undecodable notification")

		return nil
	}

	err = s.mailer.Send(ctx, mail)
	if errors.Is(err, mailer.ErrNoRecipients) {
		log.Warn().Str("key", string(message.Key)).Msg("dropping notification without recipients")

		return nil
	}

	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	return nil
}
