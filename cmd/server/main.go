package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Grenish/chitchat-next/internal/app"
	"github.com/Grenish/chitchat-next/internal/config"
	"github.com/Grenish/chitchat-next/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chitchat-server",
		Short:         "Room-scoped chat relay with live presence",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		configPath string
		overrides  config.Config
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the relay server",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := log.New("info")

			cfg, path, err := config.Load(bootLogger, configPath)
			if err != nil {
				return err
			}
			cfg.UpdateFrom(overrides)

			logger := log.New(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(&cfg, logger)
			if err != nil {
				return err
			}

			logger.Info().Str("addr", cfg.Addr).Str("config", path).Msg("starting chitchat server")
			if err := application.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("server exited with error")
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	cmd.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&overrides.ReadHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout")
	cmd.Flags().DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	return cmd
}
