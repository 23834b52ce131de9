package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"halladmin/internal/metrics"
	"halladmin/internal/model"
	"halladmin/internal/repository"
)

const (
	auditQueueSize     = 100
	auditBatchSize     = 10
	auditFlushInterval = 2 * time.Second
)

// AuditRecorder appends activity log entries for security-relevant actions.
// Recording is best-effort: it never blocks and never fails the operation it
// accompanies. When the queue is full the event is dropped and counted.
type AuditRecorder interface {
	Record(actorID uuid.UUID, action, details string)
	Recent(ctx context.Context, limit int) ([]model.ActivityLog, error)
	Close()
}

type auditRecorder struct {
	repo repository.ActivityLogRepository
	log  zerolog.Logger

	queue     chan model.ActivityLog
	done      chan struct{}
	closeOnce sync.Once

	// mu serializes enqueues against Close so Record never sends on the
	// closed queue.
	mu     sync.RWMutex
	closed bool
}

// NewAuditRecorder creates an audit recorder and starts its write-behind worker.
func NewAuditRecorder(repo repository.ActivityLogRepository, log zerolog.Logger) AuditRecorder {
	r := &auditRecorder{
		repo:  repo,
		log:   log,
		queue: make(chan model.ActivityLog, auditQueueSize),
		done:  make(chan struct{}),
	}
	go r.worker()
	return r
}

// Record enqueues one activity log entry stamped with the current time.
func (r *auditRecorder) Record(actorID uuid.UUID, action, details string) {
	entry := model.ActivityLog{
		UserID:    actorID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		metrics.AuditDroppedTotal.Inc()
		r.log.Warn().Str("action", action).Msg("audit recorder closed, event dropped")
		return
	}

	select {
	case r.queue <- entry:
		metrics.AuditEventsTotal.WithLabelValues(action).Inc()
	default:
		metrics.AuditDroppedTotal.Inc()
		r.log.Warn().Str("action", action).Msg("audit queue full, event dropped")
	}
}

// Recent returns the newest audit entries for the activity feed.
func (r *auditRecorder) Recent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	return r.repo.ListRecent(ctx, limit)
}

// Close drains pending entries and stops the worker. Safe to call twice.
func (r *auditRecorder) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.queue)
		<-r.done
	})
}

func (r *auditRecorder) worker() {
	defer close(r.done)

	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	batch := make([]model.ActivityLog, 0, auditBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := r.repo.CreateBatch(context.Background(), batch); err != nil {
			// best-effort: the primary operation already succeeded
			r.log.Error().Err(err).Int("events", len(batch)).Msg("audit batch write failed")
			metrics.AuditDroppedTotal.Add(float64(len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-r.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
