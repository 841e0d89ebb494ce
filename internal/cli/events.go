package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

func newEventsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Log product events from RabbitMQ until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if !cfg.RabbitMQ.Enabled() {
				return fmt.Errorf("RABBITMQ_URL is required")
			}

			mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, logger)
			if err != nil {
				return err
			}
			defer mqClient.Close()

			err = mqClient.ConsumeProductEvents(func(msg amqp.Delivery) error {
				event, err := rabbitmq.DecodeProductEvent(msg)
				if err != nil {
					// A body that never decodes would be redelivered forever.
					logger.Error().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Msg("dropping malformed product event")
					return nil
				}
				logger.Info().
					Str("type", event.Type).
					Int64("product_id", event.ProductID).
					Int64("actor_id", event.ActorID).
					Time("occurred_at", event.OccurredAt).
					Msg("product event")
				return nil
			})
			if err != nil {
				return err
			}

			logger.Info().Str("queue", cfg.RabbitMQ.Queue).Msg("consuming product events")
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
}
