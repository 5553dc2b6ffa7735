// Package worker runs the background mail delivery loop.
package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// mailWorker polls the email queue on a fixed interval and drains it in
// batches. It implements delivery.Delivery so main treats it like any other
// server.
type mailWorker struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler *handler.EmailHandler
	done    chan struct{}
}

// ServerParams holds dependencies for the mail worker
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EmailHandler *handler.EmailHandler
}

// NewServer creates the mail worker loop
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &mailWorker{
		cfg:     params.Cfg,
		logger:  params.Logger,
		handler: params.EmailHandler,
		done:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve polls the queue until shutdown.
func (s *mailWorker) Serve(ctx context.Context) error {
	interval := s.cfg.Email.PollInterval
	batchSize := s.cfg.Email.BatchSize

	s.logger.Info("Starting mail worker",
		slog.Duration("poll_interval", interval),
		slog.Int("batch_size", batchSize),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sent, err := s.handler.ProcessBatch(ctx, batchSize)
			if err != nil {
				s.logger.ErrorContext(ctx, "email batch failed", slog.Any("error", err))

				continue
			}
			if sent > 0 {
				s.logger.InfoContext(ctx, "email batch delivered", slog.Int("sent", sent))
			}
		case <-s.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// stop signals the poll loop to exit.
func (s *mailWorker) stop(ctx context.Context) error {
	s.logger.Info("Shutting down mail worker")
	close(s.done)

	return nil
}
