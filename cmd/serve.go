/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/codecomment/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and the comment endpoint",
	Long: `Start an HTTP server with:

  GET  /                  the Code Comment Generator page
  POST /api/code-comment  {"code": "...", "language": "..."} -> {"commentedCode": "..."}
  GET  /healthz           backend reachability

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, gen, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		srv, err := server.NewServer(cfg.Server.Addr, gen, logger)
		if err != nil {
			return err
		}
		srv.SetShutdownTimeout(cfg.Server.ShutdownTimeout)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Using inference backend",
			zap.String("url", cfg.Ollama.URL),
			zap.String("model", gen.Model()))

		if err := srv.Run(ctx); err != nil {
			logger.Error("Server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":3000", "Listen address")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown (0 = wait indefinitely)")

	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	v.BindPFlag("server.shutdown_timeout", serveCmd.Flags().Lookup("shutdown-timeout"))
}
