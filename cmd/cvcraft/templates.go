package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/orajb/cv-craft/internal/repositories"
	"github.com/spf13/cobra"
	"os"
	"text/tabwriter"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage resume templates",
	}
	cmd.AddCommand(
		newTemplatesListCmd(),
		newTemplatesSeedCmd(),
		newTemplatesAddCmd(),
		newTemplatesDefaultCmd(),
		newTemplatesDeleteCmd(),
	)
	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				templates, err := a.templates.List(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "ID\tNAME\tLAYOUT\tDEFAULT")
				for _, t := range templates {
					def := ""
					if t.IsDefault {
						def = "*"
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, render.DetectLayout(t.HTML), def)
				}
				return w.Flush()
			})
		},
	}
}

func newTemplatesSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in templates that are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				for _, builtin := range render.Builtins() {
					_, err := a.templates.GetByName(ctx, builtin.Name)
					if err == nil {
						continue
					}
					if !errors.Is(err, repositories.ErrNotFound) {
						return err
					}

					id, err := a.templates.Save(ctx, builtin, false)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q as %s\n", builtin.Name, id)
				}
				return nil
			})
		},
	}
}

func newTemplatesAddCmd() *cobra.Command {
	var description string
	var makeDefault bool

	cmd := &cobra.Command{
		Use:   "add <name> <file.html>",
		Short: "Store a template from an HTML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read template: %w", err)
			}

			return withApp(func(ctx context.Context, a *app) error {
				id, err := a.templates.Save(ctx, models.Template{
					Name:        args[0],
					Description: description,
					HTML:        string(data),
				}, makeDefault)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q as %s\n", args[0], id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Template description")
	cmd.Flags().BoolVar(&makeDefault, "default", false, "Make it the default template")
	return cmd
}

func newTemplatesDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default <id>",
		Short: "Make a template the default one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				return a.templates.SetDefault(ctx, args[0])
			})
		},
	}
}

func newTemplatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				return a.templates.Delete(ctx, args[0])
			})
		},
	}
}
