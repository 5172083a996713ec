package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorhandlers "github.com/gorilla/handlers"
	"github.com/npillmayer/bidivis"
	"github.com/npillmayer/bidivis/bidi"
	"github.com/npillmayer/bidivis/server"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/spf13/cobra"
)

var (
	listenAddr   string
	serveTesting bool
)

func init() {
	ServeCmd.Flags().StringVarP(&listenAddr, "addr", "a", "", "listen address (default from configuration)")
	ServeCmd.Flags().BoolVarP(&serveTesting, "testing", "t", false, "treat upper case ASCII letters as right-to-left")
}

// ServeCmd is the cobra command that corresponds to the serve subcommand
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "`serve` runs an HTTP server resolving visual order",
	Long:  "`serve` runs an HTTP server resolving visual order, with Prometheus metrics at /metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfiguration()
		if err != nil {
			return err
		}
		engine, err := bidivis.Open(conf, bidi.Testing(serveTesting))
		if err != nil {
			return err
		}
		defer engine.Close()
		addr := conf.HTTP.Addr
		if listenAddr != "" {
			addr = listenAddr
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, &http.Server{
			Addr:    addr,
			Handler: gorhandlers.CombinedLoggingHandler(cmd.OutOrStdout(), server.New(engine)),
		})
	},
}

// serve runs srv until ctx is done, then drains open connections.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		gtrace.CoreTracer.Infof("listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	gtrace.CoreTracer.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
