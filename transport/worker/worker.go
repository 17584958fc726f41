package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/kafka"
	notificationService "venue/internal/domains/notification/service"
)

// Notifier consumes the notification topic and delivers queued mail.
type Notifier struct {
	Config       *config.Config
	Kafka        kafka.Client
	Notification notificationService.Notification
}

func New(cfg *config.Config, client kafka.Client, notification notificationService.Notification) *Notifier {
	return &Notifier{
		Config:       cfg,
		Kafka:        client,
		Notification: notification,
	}
}

// Run blocks until SIGINT or SIGTERM is received.
func (n *Notifier) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	topic := n.Config.Kafka.Topics.Notification

	log.Info().Str("topic", topic).Str("group", n.Config.Kafka.ConsumerGroup).Msg("Starting up notification consumer.")

	if err := n.Kafka.Consume(ctx, n.Config.Kafka.ConsumerGroup, topic, n.Notification.Deliver); err != nil {
		log.Fatal().Err(err).Msg("Notification consumer stopped")
	}

	log.Info().Msg("Notification consumer shut down.")
}
