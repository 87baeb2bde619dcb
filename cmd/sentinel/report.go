package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"SignalSentinel/internal/pipeline"
	"SignalSentinel/internal/render"
)

func reportCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		toggles toggleFlags
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze the configured series and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeSrc, err := openSource(a.cfg)
			if err != nil {
				return err
			}
			defer closeSrc()

			res, err := pipeline.Run(cmd.Context(), src)
			if err != nil {
				return err
			}
			shown := toggles.apply(a.cfg.Display)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(render.NewReport(res, shown))
			}
			_, err = fmt.Fprintln(out, render.Terminal(res, shown))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report and chart payload as JSON")
	toggles.register(cmd)
	return cmd
}
