package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/kenken/internal/adapters/http"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(gin.Recovery(), httpadapter.RequestLogger(logger))

			h := httpadapter.New(newService(dataDir), logger)
			h.Register(r)

			logger.Info("listening", "addr", addr, "data", dataDir)
			return r.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "data", "directory for saved results")
	return cmd
}
