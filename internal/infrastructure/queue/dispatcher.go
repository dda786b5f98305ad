package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/pkg/metrics"
)

const (
	defaultWorkers     = 4
	defaultMaxAttempts = 5
	defaultBackoff     = 2 * time.Second
	channelBuffer      = 256
)

// ProfileWriter is the store a deferred profile write is retried against.
type ProfileWriter interface {
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
}

// Options tunes a Dispatcher. Zero values fall back to defaults.
type Options struct {
	Workers     int
	MaxAttempts int
	Backoff     time.Duration
}

// Dispatcher retries profile writes that failed after account creation. Writes
// are sharded on the account id so the writes of one account stay ordered.
type Dispatcher struct {
	workers     []chan domain.Profile
	writer      ProfileWriter
	maxAttempts int
	backoff     time.Duration
	log         zerolog.Logger
}

// NewDispatcher creates a Dispatcher. Call Start before enqueueing.
func NewDispatcher(writer ProfileWriter, opts Options, log zerolog.Logger) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}
	d := &Dispatcher{
		workers:     make([]chan domain.Profile, opts.Workers),
		writer:      writer,
		maxAttempts: opts.MaxAttempts,
		backoff:     opts.Backoff,
		log:         log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Profile, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// writes still queued at that point are lost and logged.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a profile to the worker responsible for its account. It never
// blocks: when the worker is saturated the write is dropped and counted.
func (d *Dispatcher) Enqueue(profile domain.Profile) {
	idx := d.shardIndex(profile.AccountID)
	select {
	case d.workers[idx] <- profile:
		metrics.ProfileWriteBackQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.ProfileWriteBackTotal.WithLabelValues("dropped").Inc()
		d.log.Error().Str("account_id", profile.AccountID).Msg("profile write-back queue full, write dropped")
	}
}

// shardIndex maps an account id deterministically to a worker index.
func (d *Dispatcher) shardIndex(accountID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(accountID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Profile) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			if n := len(ch); n > 0 {
				d.log.Warn().Int("worker_id", id).Int("pending", n).Msg("write-back worker stopped with pending profiles")
			}
			return
		case profile, ok := <-ch:
			if !ok {
				return
			}
			metrics.ProfileWriteBackQueueDepth.WithLabelValues(label).Dec()
			d.write(ctx, id, profile)
		}
	}
}

// write retries with linear backoff: attempt n waits n*backoff before the
// next try.
func (d *Dispatcher) write(ctx context.Context, worker int, profile domain.Profile) {
	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		p := profile
		if err = d.writer.UpsertProfile(ctx, &p); err == nil {
			metrics.ProfileWriteBackTotal.WithLabelValues("recovered").Inc()
			d.log.Info().
				Str("account_id", profile.AccountID).
				Int("attempt", attempt).
				Msg("deferred profile write recovered")
			return
		}
		if attempt == d.maxAttempts {
			break
		}

		timer := time.NewTimer(time.Duration(attempt) * d.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	metrics.ProfileWriteBackTotal.WithLabelValues("exhausted").Inc()
	d.log.Error().Err(err).
		Str("account_id", profile.AccountID).
		Int("worker_id", worker).
		Int("attempts", d.maxAttempts).
		Msg("deferred profile write failed")
}
