package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

func newAppsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"applications"},
		Short:   "Track generated documents and their applications",
	}
	cmd.AddCommand(
		newAppsListCmd(),
		newAppsShowCmd(),
		newAppsStatusCmd(),
		newAppsNotesCmd(),
		newAppsDeleteCmd(),
		newAppsStatsCmd(),
	)
	return cmd
}

func newAppsListCmd() *cobra.Command {
	var statuses []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := make([]models.Status, 0, len(statuses))
			for _, s := range statuses {
				status, err := models.ParseStatus(s)
				if err != nil {
					return err
				}
				filter = append(filter, status)
			}

			return withApp(func(ctx context.Context, a *app) error {
				apps, err := a.applications.List(ctx, filter...)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "ID\tSTATUS\tCOMPANY\tROLE\tCREATED")
				for _, app := range apps {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						app.ID, app.Status, app.Company, app.Role, app.CreatedAt.Local().Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringSliceVarP(&statuses, "status", "s", nil, "Only these statuses")
	return cmd
}

func newAppsShowCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the document of an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				app, err := a.applications.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), outFile, app.HTML, "document of "+app.ID)
			})
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (stdout when empty)")
	return cmd
}

func newAppsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an application to another status",
		Long: "Valid statuses: " + fmt.Sprint(lo.Map(models.Statuses, func(s models.Status, _ int) string {
			return string(s)
		})),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				return a.applications.UpdateStatus(ctx, args[0], status)
			})
		},
	}
}

func newAppsNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <id> <text>",
		Short: "Replace the notes of an application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				return a.applications.UpdateNotes(ctx, args[0], args[1])
			})
		},
	}
}

func newAppsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				return a.applications.Delete(ctx, args[0])
			})
		},
	}
}

func newAppsStatsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show application statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				stats, err := a.stats.Get(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), stats)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintf(w, "total\t%d\n", stats.Total)
				_, _ = fmt.Fprintf(w, "active\t%d\n", stats.Active)
				for _, status := range models.Statuses {
					_, _ = fmt.Fprintf(w, "%s\t%d\n", status, stats.ByStatus[status])
				}
				_, _ = fmt.Fprintf(w, "success rate\t%.1f%%\n", stats.SuccessRate)
				_, _ = fmt.Fprintf(w, "interview rate\t%.1f%%\n", stats.InterviewRate)
				return w.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
