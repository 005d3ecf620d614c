package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cvcraft",
		Short:         "Career record, resume templates and AI tailored CVs",
		Long:          "cvcraft keeps a structured career record, fills HTML resume templates with it, tailors documents to job descriptions and tracks the applications they were sent with.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(),
		newInspectCmd(),
		newExtractCmd(),
		newEditCmd(),
		newGenerateCmd(),
		newRecordCmd(),
		newTemplatesCmd(),
		newAppsCmd(),
		newExportCmd(),
		newCleanupCmd(),
		newDaemonCmd(),
	)
	return root
}
