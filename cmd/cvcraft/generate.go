package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/clients/gemini"
	"github.com/orajb/cv-craft/internal/clients/posting"
	"github.com/orajb/cv-craft/internal/export"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/orajb/cv-craft/internal/services"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		req      services.TailorRequest
		jobFile  string
		density  string
		paginate bool
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Tailor a CV to a job description with the AI model",
		Long: "Sends the career record, the job description and the chosen template to the model and stores " +
			"the returned document as a draft application. Passing --draft again overwrites that draft.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				if err := a.cfg.AI.RequireKey(); err != nil {
					return err
				}

				if jobFile != "" {
					description, err := readDocument(cmd.InOrStdin(), jobFile)
					if err != nil {
						return err
					}
					req.JobDescription = description
				}

				if density != "" {
					d, err := render.ParseDensity(density)
					if err != nil {
						return err
					}
					req.Density = d
				}

				defaultDensity, err := a.density("")
				if err != nil {
					return err
				}

				aiClient, err := gemini.NewClient(ctx, a.cfg.AI.APIKey, gemini.Model(a.cfg.AI.Model))
				if err != nil {
					return fmt.Errorf("can't create AI client: %w", err)
				}
				defer aiClient.Close()
				aiClient.SetSystemInstruction(services.SystemInstruction)
				aiClient.SetMinuteRateLimit(a.cfg.AI.MaxRequestsPerMinute)
				aiClient.SetDayRateLimit(a.cfg.AI.MaxRequestsPerDay)

				tailor := services.NewTailor(a.bus, aiClient, posting.NewClient(), a.records, a.templates,
					a.applications, defaultDensity)

				result, err := tailor.Generate(ctx, req)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "draft %s stored (%s layout, quick edit: %t)\n",
					result.ApplicationID, result.Layout, result.QuickEdit)

				if outFile != "" {
					if err = export.WriteHTML(outFile, result.HTML, result.Density, paginate || a.cfg.Render.Paginate); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "preview: %s\n", outFile)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&jobFile, "job", "j", "", "Job description file, - reads stdin")
	cmd.Flags().StringVarP(&req.PostingURL, "url", "u", "", "Job posting URL, fetched when no description is given")
	cmd.Flags().StringVar(&req.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&req.Role, "role", "", "Role title")
	cmd.Flags().StringVar(&req.Instructions, "instructions", "", "Extra instructions for the model")
	cmd.Flags().StringVarP(&req.TemplateID, "template", "t", "", "Template id (default template when empty)")
	cmd.Flags().StringVar(&req.DraftID, "draft", "", "Draft id to overwrite")
	cmd.Flags().BoolVar(&req.OnePage, "one-page", false, "Ask for a single page document")
	cmd.Flags().StringVar(&density, "density", "", "Layout density of the preview")
	cmd.Flags().BoolVar(&paginate, "paginate", false, "Add page break rules to the preview")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write an HTML preview to this file")
	cmd.MarkFlagsOneRequired("job", "url")
	return cmd
}
