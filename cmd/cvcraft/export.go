package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/export"
	"github.com/orajb/cv-craft/internal/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"path/filepath"
	"strings"
)

func newExportCmd() *cobra.Command {
	var (
		format   string
		outFile  string
		density  string
		paginate bool
	)

	cmd := &cobra.Command{
		Use:   "export <application-id>",
		Short: "Write the document of an application as HTML or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "html" && format != "pdf" {
				return fmt.Errorf("unknown format %q, expected html or pdf", format)
			}

			return withApp(func(ctx context.Context, a *app) error {
				d, err := a.density(density)
				if err != nil {
					return err
				}

				app, err := a.applications.Get(ctx, args[0])
				if err != nil {
					return err
				}

				path := outFile
				if path == "" {
					path = filepath.Join(a.cfg.Render.OutputDir, export.FileName(app.Company, app.Role, app.CreatedAt, format))
				}
				paginate = paginate || a.cfg.Render.Paginate

				if format == "pdf" {
					err = export.NewPDFPrinter(a.cfg.Render.ChromePath).WritePDF(ctx, path, app.HTML, d, paginate)
				} else {
					err = export.WriteHTML(path, app.HTML, d, paginate)
				}
				if err != nil {
					log.WithField(logger.ErrorTypeField, logger.ErrorTypeExport).Errorf("failed to export %s: %v", app.ID, err)
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", app.ID, path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or pdf")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (generated name in the output directory when empty)")
	cmd.Flags().StringVar(&density, "density", "", "Layout density: normal, compact or very_compact")
	cmd.Flags().BoolVar(&paginate, "paginate", false, "Add page break rules for printing")
	return cmd
}
