package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bunkatopics/territory/internal/dataset"
	"github.com/bunkatopics/territory/internal/store"
)

func ingestCmd() *cobra.Command {
	var (
		dbPath string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "ingest <dataset>",
		Short: "Load a topic export into a SQLite database",
		Long: `Ingest resolves the given dataset (a JSON export or an http(s) URL)
and writes its topics, terms and documents into a SQLite database.
The resulting file can be opened directly by the TUI and loads faster
than re-parsing the JSON export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			if !force {
				if _, err := os.Stat(dbPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", dbPath)
				}
			}

			src, err := dataset.Resolve(args[0])
			if err != nil {
				return err
			}
			ex, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Ingest(ex); err != nil {
				return err
			}

			topicCount, docCount, err := st.Stats()
			if err != nil {
				return err
			}
			fmt.Printf("Ingested %d topics and %d documents into %s\n", topicCount, docCount, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path of the SQLite database to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing database")

	return cmd
}
