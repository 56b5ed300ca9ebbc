package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/arbor/pkg/adapters/http"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// Serve exposes the HTTP API on addr until ctx is cancelled, typically by a signal.
func Serve(ctx *SignalContext, w io.Writer, addr string, o Options) error {
	logger := createLogger(o)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr: addr,
		Handler: httpAdapter.NewHandler(
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(observability.NewMetrics(reg), reg),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(w, "Starting Arbor Server on %s\n", srv.Addr)

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		if sig := ctx.Signal(); sig != nil {
			fmt.Fprintf(w, "\nStart shutdown... Signal: %v\n", sig)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		}
		fmt.Fprintln(w, "Arbor Server stopped gracefully")
		return nil
	}
}
