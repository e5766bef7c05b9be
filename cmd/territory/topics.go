package main

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bunkatopics/territory/internal/dataset"
	"github.com/bunkatopics/territory/internal/topics"
)

// maxTermsShown caps the terms column so wide topics don't blow up the table.
const maxTermsShown = 5

func topicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics <dataset>",
		Short: "Print the topics of a dataset as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := dataset.Resolve(args[0])
			if err != nil {
				return err
			}
			ex, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "Name", "Size", "Share", "Top terms"})

			for i, topic := range ex.Topics {
				t.AppendRow(table.Row{
					i + 1,
					topic.Name,
					topic.Size,
					topics.FormatPercent(topic.Percent) + "%",
					termsColumn(topic.TermIDs),
				})
			}

			t.Render()
			return nil
		},
	}

	return cmd
}

func termsColumn(terms []string) string {
	if len(terms) > maxTermsShown {
		terms = terms[:maxTermsShown]
	}
	return strings.Join(terms, ", ")
}
