package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalSentinel/internal/collector"
)

func importCmd(a *app) *cobra.Command {
	var csvPath, dbPath, table string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy input bars from a CSV file into SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if csvPath == "" {
				csvPath = cfg.Source.CSVPath
			}
			if dbPath == "" {
				dbPath = cfg.Source.SQLitePath
			}
			if table == "" {
				table = cfg.Source.Table
			}

			series, err := collector.Collect(cmd.Context(), collector.NewCSVSource(csvPath, cfg.Source.Symbol))
			if err != nil {
				return err
			}
			store, err := collector.NewSQLiteSource(dbPath, table, cfg.Source.Symbol)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Store(cmd.Context(), series); err != nil {
				return err
			}
			log.Info().Str("from", csvPath).Str("to", dbPath).Int("bars", series.Len()).Msg("import complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file to import (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database (default from config)")
	cmd.Flags().StringVar(&table, "table", "", "target table (default from config)")
	return cmd
}
