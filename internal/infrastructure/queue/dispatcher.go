package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// VisitRecorder persists a single referral visit.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, code string) error
}

// Dispatcher records referral visits off the request path. Visits are routed
// to a fixed set of workers by hashing the code, so counters for one code are
// always written by the same worker.
type Dispatcher struct {
	workers  []chan string
	recorder VisitRecorder
	log      zerolog.Logger
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
	stop   context.CancelFunc
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder VisitRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan string, numWorkers),
		recorder: recorder,
		log:      log,
		stop:     func() {},
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Cancelling ctx stops them at once,
// abandoning buffered visits; use Shutdown to drain instead.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.stop = context.WithCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Shutdown stops accepting visits and waits for the workers to record what
// is already buffered. If ctx ends first the workers are cancelled and the
// remaining visits are lost; ctx.Err() is returned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		d.stop()
		<-drained
		return ctx.Err()
	}
}

// Enqueue hands a visit to the worker responsible for its code. It never
// blocks: when that worker's buffer is full, or the dispatcher is shutting
// down, the visit is dropped and false is returned.
func (d *Dispatcher) Enqueue(code string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.ReferralVisitsDroppedTotal.Inc()
		d.log.Warn().Str("code", code).Msg("visit queue closed, dropping visit")
		return false
	}

	select {
	case d.workers[d.shardIndex(code)] <- code:
		return true
	default:
		metrics.ReferralVisitsDroppedTotal.Inc()
		d.log.Warn().Str("code", code).Msg("visit queue full, dropping visit")
		return false
	}
}

// shardIndex maps a code deterministically to a worker index.
func (d *Dispatcher) shardIndex(code string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case code, ok := <-ch:
			if !ok {
				return
			}
			if err := d.recorder.RecordVisit(ctx, code); err != nil {
				d.log.Error().Err(err).
					Str("code", code).
					Int("worker_id", id).
					Msg("visit recording failed")
				continue
			}
			metrics.ReferralVisitsTotal.Inc()
		}
	}
}
