package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZacxDev/swampdocs/handlers"
	"github.com/ZacxDev/swampdocs/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		log := logging.WithComponent("serve")

		d, err := loadDescriptor(cmd)
		if err != nil {
			return err
		}

		site, err := handlers.NewSite(d)
		if err != nil {
			return err
		}

		assetsDir, err := os.MkdirTemp("", "swampdocs-assets")
		if err != nil {
			return errors.WithStack(err)
		}
		defer os.RemoveAll(assetsDir)

		if err := site.BundleStyles(assetsDir); err != nil {
			return err
		}

		router, err := handlers.SetupRouter(site)
		if err != nil {
			return err
		}

		server := &http.Server{
			Addr:              ":" + port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ln, err := net.Listen("tcp", server.Addr)
		if err != nil {
			return errors.WithStack(err)
		}

		log.Info().Str("port", port).Msg("starting preview server")
		return runServer(ctx, server, ln, log)
	},
}

var shutdownTimeout = 5 * time.Second

// runServer serves on ln until ctx is done, then shuts the server down gracefully.
func runServer(ctx context.Context, server *http.Server, ln net.Listener, log zerolog.Logger) error {
	served := make(chan error, 1)
	go func() {
		served <- server.Serve(ln)
	}()

	select {
	case err := <-served:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutting down preview server")
		return errors.WithStack(err)
	}

	if err := <-served; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
