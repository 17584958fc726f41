package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/config"
	infraKafka "venue/infras/kafka"
	kafkaMocks "venue/infras/kafka/mocks"
	notificationMocks "venue/internal/domains/notification/mocks"
	"venue/transport/worker"
)

func TestNotifierRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "venue-notifier"
	cfg.Kafka.Topics.Notification = "venue.notification"

	client := kafkaMocks.NewMockClient(ctrl)
	notification := notificationMocks.NewMockNotification(ctrl)

	message := kafka.Message{Key: []byte("booking-1")}

	notification.EXPECT().Deliver(gomock.Any(), message).Return(errors.New("mail down"))

	client.EXPECT().Consume(gomock.Any(), "venue-notifier", "venue.notification", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, handler infraKafka.Handler) error {
			assert.Error(t, handler(ctx, message))

			return nil
		})

	worker.New(cfg, client, notification).Run()
}
