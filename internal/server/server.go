// Package server boots the application: config, database, cache, storage,
// event listeners, the optional gRPC health endpoint and the HTTP stack.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/ordertrack/app/listeners"
	"github.com/shashiranjanraj/ordertrack/app/routes"
	"github.com/shashiranjanraj/ordertrack/config"
	"github.com/shashiranjanraj/ordertrack/pkg/cache"
	"github.com/shashiranjanraj/ordertrack/pkg/database"
	grpcserver "github.com/shashiranjanraj/ordertrack/pkg/grpc"
	"github.com/shashiranjanraj/ordertrack/pkg/logger"
	"github.com/shashiranjanraj/ordertrack/pkg/metrics"
	"github.com/shashiranjanraj/ordertrack/pkg/middleware"
	"github.com/shashiranjanraj/ordertrack/pkg/reqid"
	"github.com/shashiranjanraj/ordertrack/pkg/router"
	"github.com/shashiranjanraj/ordertrack/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start boots everything and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := config.Verify(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		// cache degrades to a no-op, dashboard just recomputes every time
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}

	if err := storage.Connect(); err != nil {
		return err
	}

	if uri := config.MongoURI(); uri != "" {
		sink, err := logger.EnableMongoSink(uri, config.MongoDB(), config.MongoLogCollection())
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer sink.Close()
		}
	}

	listeners.Register()

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	if err := routes.RegisterAPI(r); err != nil {
		return err
	}

	stopGRPC := func() {}
	if port := config.GRPCPort(); port != "" {
		srv, err := grpcserver.Start(port)
		if err != nil {
			return err
		}
		stopGRPC = func() { grpcserver.Stop(srv) }
	}

	addr := ":" + config.AppPort()
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	stopGRPC()

	return nil
}
