package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/homefind/marketplace-api/internal/api/metrics"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes listing view events to a fixed set of workers using
// consistent hashing on the listing id, so views of the same listing are
// counted in order.
type Dispatcher struct {
	workers []chan ports.ViewEventInput
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ViewEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ViewEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a view event to the worker responsible for its listing.
// Never blocks: when the worker's buffer is full the event is dropped; a
// lost view count is preferable to stalling a public page read.
func (d *Dispatcher) Enqueue(event ports.ViewEventInput) {
	i := d.shardIndex(event.ListingID)
	select {
	case d.workers[i] <- event:
		metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.ViewsErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("listing_id", event.ListingID).Int("worker_id", i).Msg("view queue full, event dropped")
	}
}

// shardIndex maps a listing id deterministically to a worker index.
func (d *Dispatcher) shardIndex(listingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(listingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ViewEventInput) {
	gauge := metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("listing_id", event.ListingID).
					Int("worker_id", id).
					Msg("view processing failed")
			}
		}
	}
}
