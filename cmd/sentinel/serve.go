package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"SignalSentinel/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr    string
		toggles toggleFlags
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if zerolog.GlobalLevel() > zerolog.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			src, closeSrc, err := openSource(a.cfg)
			if err != nil {
				return err
			}
			defer closeSrc()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			h := &server.Handler{Source: src, Toggles: toggles.apply(a.cfg.Display)}
			return server.Serve(cmd.Context(), addr, h)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	toggles.register(cmd)
	return cmd
}
