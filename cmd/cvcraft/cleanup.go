package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/orajb/cv-craft/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os/signal"
	"syscall"
)

func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove drafts older than the configured expiration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				cleaner, err := services.NewDraftsCleaner(a.applications, a.cfg.Render.DraftExpirationDays)
				if err != nil {
					return err
				}

				removed, err := cleaner.Clean(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d stale drafts\n", removed)
				return nil
			})
		},
	}
}

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the scheduled drafts cleanup and serve metrics until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				metrics.StartMetricsServer(a.cfg.Metrics.Address)

				cleaner, err := services.NewDraftsCleaner(a.applications, a.cfg.Render.DraftExpirationDays)
				if err != nil {
					return fmt.Errorf("can't create drafts cleaner: %w", err)
				}
				if err = cleaner.Start(); err != nil {
					return err
				}

				<-ctx.Done()

				log.Info("Shutting down services...")
				cleaner.Stop()
				log.Info("Services stopped.")
				return nil
			})
		},
	}
}
