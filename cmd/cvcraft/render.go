package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/orajb/cv-craft/internal/render"
	"github.com/spf13/cobra"
	"io"
	"os"
)

func newRenderCmd() *cobra.Command {
	var (
		templateRef  string
		templateFile string
		outFile      string
		density      string
		paginate     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fill a template with the career record",
		Long:  "Renders the career record into a template. The grouped layout is used when the template asks for {{EXPERIENCE_GROUPED}}.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				d, err := a.density(density)
				if err != nil {
					return err
				}

				template, err := a.resolveTemplate(ctx, templateRef, templateFile)
				if err != nil {
					return err
				}

				record, err := a.records.Get(ctx)
				if err != nil {
					return err
				}

				doc, layout := render.Compose(template.HTML, *record, d, paginate || a.cfg.Render.Paginate)
				metrics.DocumentsRendered.WithLabelValues(string(layout)).Inc()

				return writeOutput(cmd.OutOrStdout(), outFile, doc,
					fmt.Sprintf("rendered %q with %s layout", template.Name, layout))
			})
		},
	}

	cmd.Flags().StringVarP(&templateRef, "template", "t", "", "Stored template id or name (default template when empty)")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "Template HTML file")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (stdout when empty)")
	cmd.Flags().StringVar(&density, "density", "", "Layout density: normal, compact or very_compact")
	cmd.Flags().BoolVar(&paginate, "paginate", false, "Add page break rules for printing")
	cmd.MarkFlagsMutuallyExclusive("template", "template-file")
	return cmd
}

// writeOutput writes doc to file, or to w when file is empty. The note is only
// shown for files so stdout stays a clean document.
func writeOutput(w io.Writer, file, doc, note string) error {
	if file == "" {
		_, err := io.WriteString(w, doc)
		return err
	}
	if err := os.WriteFile(file, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", note, file)
	return nil
}
