package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 30 * time.Second

// Run starts the HTTP server and all background services, then blocks until shutdown signal.
//  1. Map HTTP handlers and routes
//  2. Start the realtime hub and its Redis subscriber
//  3. Start HTTP server
//  4. Wait for shutdown signal
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	// 1. Map handlers
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	// 2. Start realtime background services
	go srv.realtimeUC.Run()
	srv.logger.Info(ctx, "Realtime hub started")

	if err := srv.subscriber.Start(ctx); err != nil {
		srv.logger.Errorf(ctx, "Failed to start Redis subscriber: %v", err)
		return err
	}

	// 3. Start HTTP server in background
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	// 4. Wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	var runErr error
	select {
	case sig := <-ch:
		srv.logger.Infof(ctx, "Received %v, stopping...", sig)
	case runErr = <-errCh:
		srv.logger.Errorf(ctx, "HTTP server error: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.subscriber.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "Redis subscriber shutdown error: %v", err)
	}
	if err := srv.realtimeUC.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "Realtime hub shutdown error: %v", err)
	}
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}

	return runErr
}
