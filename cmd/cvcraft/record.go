package main

import (
	"context"
	"fmt"
	"github.com/orajb/cv-craft/internal/domain/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"os"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Show or import the career record",
	}
	cmd.AddCommand(newRecordShowCmd(), newRecordImportCmd())
	return cmd
}

func newRecordShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the career record as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				record, err := a.records.Get(ctx)
				if err != nil {
					return err
				}

				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent(2)
				defer encoder.Close()
				return encoder.Encode(record)
			})
		},
	}
}

func newRecordImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <record.yaml>",
		Short: "Replace the career record with the content of a YAML file",
		Long:  "Replaces the whole career record. Items keep the ids present in the file, the others get new ones.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(args[0])
			if err != nil {
				return err
			}

			return withApp(func(ctx context.Context, a *app) error {
				if err := a.records.Import(ctx, *record); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d work experiences, %d education entries, %d projects\n",
					len(record.WorkExperiences), len(record.Education), len(record.Projects))
				return nil
			})
		},
	}
}

func loadRecord(path string) (*models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	record := models.NewRecord()
	if err = yaml.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	return record, nil
}
