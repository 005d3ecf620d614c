package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/services"
	"github.com/spf13/cobra"
	"os"
)

type editTarget struct {
	file string
	app  string
}

func (t *editTarget) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.file, "file", "f", "", "Document file to edit in place, - reads stdin and prints the result")
	cmd.Flags().StringVarP(&t.app, "app", "a", "", "Application id whose document is edited")
	cmd.MarkFlagsOneRequired("file", "app")
	cmd.MarkFlagsMutuallyExclusive("file", "app")
}

// run opens an edit session on the target, applies edit and stores the result.
func (t *editTarget) run(cmd *cobra.Command, edit func(ctx context.Context, s *services.EditSession) (bool, error)) error {
	out := cmd.OutOrStdout()

	if t.file != "" {
		doc, err := readDocument(cmd.InOrStdin(), t.file)
		if err != nil {
			return err
		}

		session := services.NewEditSession(nil, nil, "", doc)
		applied, err := edit(cmd.Context(), session)
		if err != nil {
			return err
		}
		if !applied {
			_, _ = fmt.Fprintln(out, "no change")
			return nil
		}
		if t.file == "-" {
			_, err = fmt.Fprint(out, session.Document())
			return err
		}
		if err = os.WriteFile(t.file, []byte(session.Document()), 0644); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		_, _ = fmt.Fprintf(out, "updated %s\n", t.file)
		return nil
	}

	return withApp(func(ctx context.Context, a *app) error {
		application, err := a.applications.Get(ctx, t.app)
		if err != nil {
			return err
		}

		session := services.NewEditSession(a.bus, a.applications, application.ID, application.HTML)
		applied, err := edit(ctx, session)
		if err != nil {
			return err
		}
		if !applied {
			_, _ = fmt.Fprintln(out, "no change")
			return nil
		}
		_, _ = fmt.Fprintf(out, "updated application %s\n", application.ID)
		return nil
	})
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Quick edits of a generated document",
	}
	cmd.AddCommand(newEditSummaryCmd(), newEditBulletsCmd())
	return cmd
}

func newEditSummaryCmd() *cobra.Command {
	var target editTarget
	var text string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Replace the summary text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return target.run(cmd, func(ctx context.Context, s *services.EditSession) (bool, error) {
				return s.SetSummary(ctx, text)
			})
		},
	}

	target.bind(cmd)
	cmd.Flags().StringVar(&text, "text", "", "New summary text")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newEditBulletsCmd() *cobra.Command {
	var target editTarget
	var index int
	var bullets []string

	cmd := &cobra.Command{
		Use:   "bullets",
		Short: "Replace the bullets of one experience entry",
		Long:  "Replaces the bullet list of the entry at --index, as numbered by the extract command. Repeat --bullet for every line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return target.run(cmd, func(ctx context.Context, s *services.EditSession) (bool, error) {
				return s.SetBullets(ctx, index, bullets)
			})
		},
	}

	target.bind(cmd)
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Entry index")
	cmd.Flags().StringArrayVarP(&bullets, "bullet", "b", nil, "Bullet text, repeatable")
	_ = cmd.MarkFlagRequired("bullet")
	return cmd
}
