// Package server owns the listen/serve/shutdown lifecycle of the HTTP and
// gRPC listeners.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/ordermanager/pkg/grpc"
	"github.com/shashiranjanraj/ordermanager/pkg/logger"
)

type Options struct {
	HTTPAddr string
	// GRPCAddr is optional; the gRPC health server is skipped when empty.
	GRPCAddr        string
	ShutdownTimeout time.Duration
}

// Run serves handler until ctx is cancelled or the HTTP listener fails, then
// drains in-flight requests within ShutdownTimeout.
func Run(ctx context.Context, handler http.Handler, opts Options) error {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}

	srv := &http.Server{
		Addr:              opts.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	var rpc *grpc.Server
	if opts.GRPCAddr != "" {
		var err error
		if rpc, err = grpc.Start(opts.GRPCAddr); err != nil {
			return err
		}
		defer rpc.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", opts.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", opts.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http: shutdown: %w", err)
	}
	return nil
}
