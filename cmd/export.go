package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/ajay-constructions/estimator/internal/export"
	"github.com/ajay-constructions/estimator/internal/history"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var dataDir string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the durable quote log to Parquet",
		Long: `Converts the append-only JSONL quote log written by the server into a
Parquet file for offline analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			quoteLog := history.NewLog(filepath.Join(dataDir, "quotes.jsonl"))

			quotes, err := quoteLog.Load()
			if err != nil {
				return err
			}
			if len(quotes) == 0 {
				slog.Warn("Quote log is empty, writing an empty archive", "path", quoteLog.Path())
			}

			if err := export.WriteParquet(output, quotes); err != nil {
				return err
			}

			slog.Info("Exported quote archive", "quotes", len(quotes), "output", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory containing the quote log")
	cmd.Flags().StringVar(&output, "output", "quotes.parquet", "Output Parquet file")

	return cmd
}
