package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/app"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := openStorage(ctx, cfg, logger, cfg.Database.AutoMigrate)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Error().Err(err).Msg("failed to close database")
				}
			}()

			var events services.EventPublisher
			if cfg.RabbitMQ.Enabled() {
				mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, logger)
				if err != nil {
					return err
				}
				defer mqClient.Close()
				events = mqClient
			}

			application := app.New(app.Options{
				Products:    store.products,
				Users:       store.users,
				Events:      events,
				JWTSecret:   cfg.Auth.JWTSecret,
				TokenTTL:    cfg.Auth.TokenTTL,
				CORSOrigins: cfg.Server.CORSOrigins,
				Logger:      logger,
			})

			serverErr := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("starting server")
				serverErr <- application.Listen(cfg.Server.Port)
			}()

			select {
			case err := <-serverErr:
				return err
			case <-ctx.Done():
			}

			logger.Info().Msg("shutting down server")
			if err := application.ShutdownWithTimeout(shutdownTimeout); err != nil {
				logger.Error().Err(err).Msg("error during server shutdown")
				return err
			}
			logger.Info().Msg("server gracefully stopped")
			return nil
		},
	}
}
