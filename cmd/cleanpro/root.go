package main

import (
	"cleanpro-web/config"
	"cleanpro-web/pkg/logger"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cleanpro",
		Short:         "Avatar CleanPro website server and catalog tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newSitemapCmd())

	return cmd
}

// loadConfig reads the environment and initialises the logger.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	logger.Init(cfg.LogLevel)
	return cfg, nil
}
