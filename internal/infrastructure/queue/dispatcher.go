package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/api/metrics"
	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher writes activity entries asynchronously through a fixed set of
// workers. Entries are sharded by actor id so one actor's entries are stored
// in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.ActivityLog
	repo    ports.ActivityRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityLog, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityLog, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. On ctx cancellation each worker
// drains what is already queued, then exits.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record queues entry for its actor's worker. It never blocks: when the
// worker's buffer is full the entry is dropped and counted.
func (d *Dispatcher) Record(entry domain.ActivityLog) {
	idx := d.shardIndex(entry.ActorID)
	select {
	case d.workers[idx] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivityEntriesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("action", entry.Action).Str("actor_id", entry.ActorID).Msg("activity queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityLog) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			metrics.ActivityQueueDepth.WithLabelValues(label).Set(0)
			return
		case entry := <-ch:
			d.write(context.Background(), id, entry)
			metrics.ActivityQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) drain(id int, ch <-chan domain.ActivityLog) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case entry := <-ch:
			d.write(ctx, id, entry)
		default:
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, entry domain.ActivityLog) {
	start := time.Now()
	err := d.repo.Insert(ctx, &entry)
	metrics.ActivityWriteDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ActivityEntriesTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("action", entry.Action).
			Int("worker_id", id).
			Msg("activity write failed")
		return
	}
	metrics.ActivityEntriesTotal.WithLabelValues("stored").Inc()
}
