package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"nagrik-rag/internal/domain"
	"nagrik-rag/internal/usecase"
)

const refreshTimeout = 30 * time.Second

// Refresher periodically pulls report-derived documents into the document
// store so queries start from a warm store instead of paying the full
// fetch on every request. Refreshes are additionally rate limited so a
// misconfigured interval cannot hammer the report store.
type Refresher struct {
	retrieve usecase.RetrieveDocumentsUsecase
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
	stopChan chan struct{}
}

// NewRefresher creates a refresher that runs every interval.
func NewRefresher(retrieve usecase.RetrieveDocumentsUsecase, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		retrieve: retrieve,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(10*time.Second), 1),
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the refresh loop. An initial refresh runs immediately.
func (r *Refresher) Start() {
	r.logger.Info("starting document refresher", "interval", r.interval)
	go r.run()
}

// Stop terminates the refresh loop.
func (r *Refresher) Stop() {
	r.logger.Info("stopping document refresher")
	close(r.stopChan)
}

func (r *Refresher) run() {
	r.refreshOnce()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.refreshOnce()
		}
	}
}

func (r *Refresher) refreshOnce() {
	if !r.limiter.Allow() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := r.retrieve.Refresh(ctx); err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			r.logger.Warn("refresh skipped, report source unavailable", "error", err)
			return
		}
		r.logger.Error("document refresh failed", "error", err)
	}
}
