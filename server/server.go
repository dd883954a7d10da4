// Package server runs the HTTP listener and coordinates graceful shutdown
// of the listener and the background scheduler.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/scheduler"
)

type Server struct {
	cfg       config.Server
	handler   http.Handler
	scheduler *scheduler.Scheduler
	logger    *slog.Logger
}

func NewServer(cfg config.Server, handler http.Handler, s *scheduler.Scheduler, logger *slog.Logger) *Server {
	return &Server{
		cfg:       cfg,
		handler:   handler,
		scheduler: s,
		logger:    logger,
	}
}

// Run serves until a shutdown signal or a listener error, then shuts the
// listener and the scheduler down within the configured grace period.
// It does not return.
func (s *Server) Run() {
	s.logger.Info("server configuration",
		"addr", s.cfg.Addr,
		"read_timeout", s.cfg.ReadTimeout.Duration,
		"read_header_timeout", s.cfg.ReadHeaderTimeout.Duration,
		"write_timeout", s.cfg.WriteTimeout.Duration,
		"idle_timeout", s.cfg.IdleTimeout.Duration,
		"shutdown_timeout", s.cfg.ShutdownGracefulTimeout.Duration,
	)

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout.Duration,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout.Duration,
		WriteTimeout:      s.cfg.WriteTimeout.Duration,
		IdleTimeout:       s.cfg.IdleTimeout.Duration,
	}

	serverError := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("listen and serve error", "err", err)
			serverError <- err
		}
	}()

	s.scheduler.Start()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)

	select {
	case <-ctx.Done():
		s.logger.Info("received shutdown signal, shutting down gracefully")
	case err := <-serverError:
		s.logger.Error("server error, initiating shutdown", "err", err)
	}

	stop()

	gracefulCtx, cancelShutdown := context.WithTimeout(context.Background(), s.cfg.ShutdownGracefulTimeout.Duration)
	defer cancelShutdown()

	shutdownGroup, _ := errgroup.WithContext(gracefulCtx)

	shutdownGroup.Go(func() error {
		if err := srv.Shutdown(gracefulCtx); err != nil {
			s.logger.Error("HTTP server shutdown error", "err", err)
			return err
		}
		s.logger.Info("HTTP server stopped gracefully")
		return nil
	})

	shutdownGroup.Go(func() error {
		if err := s.scheduler.Stop(gracefulCtx); err != nil {
			s.logger.Error("scheduler shutdown error", "err", err)
			return err
		}
		return nil
	})

	if err := shutdownGroup.Wait(); err != nil {
		s.logger.Error("error during shutdown", "err", err)
		os.Exit(1)
	}

	s.logger.Info("all systems stopped gracefully")
	os.Exit(0)
}
