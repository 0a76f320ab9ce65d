package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
	"github.com/kejaplug/rental-api/internal/pkg/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes notifications to a fixed set of workers using
// consistent hashing on the recipient id, guaranteeing per-recipient
// delivery ordering. Inserts are best-effort: a failure is logged and
// counted, never retried, and never surfaces to the request that
// triggered the fan-out.
type Dispatcher struct {
	workers []chan *domain.Notification
	repo    ports.NotificationRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.NotificationRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan *domain.Notification, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its
// recipient. The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n *domain.Notification) {
	metrics.NotificationsFanoutTotal.WithLabelValues(string(n.Type)).Inc()
	d.workers[d.shardIndex(n.UserID)] <- n
}

// EnqueueBatch enqueues multiple notifications preserving per-recipient
// ordering.
func (d *Dispatcher) EnqueueBatch(ns []*domain.Notification) {
	for _, n := range ns {
		d.Enqueue(n)
	}
}

// shardIndex maps a recipient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.Notification) {
	gauge := metrics.FanoutQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, n); err != nil {
				metrics.NotificationsFanoutErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("user_id", n.UserID).
					Str("type", string(n.Type)).
					Int("worker_id", id).
					Msg("notification insert failed")
			}
		}
	}
}
