package cli

import (
	"context"
	"fmt"
	"os"

	"catalog/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	configFile string
}

// NewRootCommand builds the catalog command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (yaml, json, toml or .env)")

	cmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newSeedCommand(opts),
		newEventsCommand(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// load reads defaults, the optional config file and the environment, in that order of precedence.
func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	v := viper.New()
	config.SetDefaults(v)
	v.AutomaticEnv()

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerolog.Nop(), fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, config.NewLogger(cfg.Logger), nil
}
