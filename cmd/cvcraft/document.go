package main

import (
	"encoding/json"
	"fmt"
	"github.com/orajb/cv-craft/internal/document"
	"github.com/spf13/cobra"
	"io"
	"os"
)

type extraction struct {
	Summary   string           `json:"summary"`
	Entries   []document.Entry `json:"entries"`
	QuickEdit bool             `json:"quick_edit"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.html>",
		Short: "Show the outline of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			outline, err := document.Inspect(doc)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), outline)
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.html>",
		Short: "Print the editable summary and experience entries of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			entries := document.ExtractEntries(doc)
			if entries == nil {
				entries = []document.Entry{}
			}
			return printJSON(cmd.OutOrStdout(), extraction{
				Summary:   document.ExtractSummary(doc),
				Entries:   entries,
				QuickEdit: document.Editable(doc),
			})
		},
	}
}

// readDocument reads a file, or stdin for "-".
func readDocument(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
