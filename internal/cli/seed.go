package cli

import (
	"fmt"

	"catalog/internal/config"
	"catalog/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var (
		email    string
		name     string
		password string
		products bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the demo user and optionally sample products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver == config.DriverMemory {
				return fmt.Errorf("seed needs a postgres or sqlite database")
			}

			// Flags override the SEED_* settings.
			if !cmd.Flags().Changed("email") {
				email = cfg.Seed.Email
			}
			if !cmd.Flags().Changed("name") {
				name = cfg.Seed.Name
			}
			if !cmd.Flags().Changed("password") {
				password = cfg.Seed.Password
			}

			store, err := openStorage(cmd.Context(), cfg, logger, cfg.Database.AutoMigrate)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := seed.Demo(cmd.Context(), store.users, store.products, seed.Options{
				Email:    email,
				Name:     name,
				Password: password,
				Products: products,
			}, logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s (id %d) created=%t, products created=%d\n",
				result.User.Email, result.User.ID, result.UserCreated, result.ProductsCreated)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "demo user email (default SEED_EMAIL)")
	cmd.Flags().StringVar(&name, "name", "", "demo user name (default SEED_NAME)")
	cmd.Flags().StringVar(&password, "password", "", "demo user password (default SEED_PASSWORD)")
	cmd.Flags().BoolVar(&products, "products", false, "also create sample products when the catalog is empty")
	return cmd
}
