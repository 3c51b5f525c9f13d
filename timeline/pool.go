package timeline

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	maxDefaultWorkers = 4
	defaultCacheTTL   = 5 * time.Minute
)

// Job describes one Track build. Zero Gap, Step and Scale select the
// defaults. Options are applied after those fields, so
// Options: []Option{WithGap(0)} asks for touching blocks.
type Job struct {
	Times   []float64
	Widths  []float64
	Gap     float64
	Step    float64
	Scale   float64
	Options []Option
}

func (j Job) options() []Option {
	opts := make([]Option, 0, 3+len(j.Options))
	if j.Gap != 0 {
		opts = append(opts, WithGap(j.Gap))
	}
	if j.Step != 0 {
		opts = append(opts, WithStep(j.Step))
	}
	if j.Scale != 0 {
		opts = append(opts, WithScale(j.Scale))
	}
	return append(opts, j.Options...)
}

// key fingerprints the job inputs after all options are applied, so two jobs
// that would build identical tracks share a cache entry.
func (j Job) key() string {
	cfg := ApplyOptions(j.options()...)

	d := xxhash.New()
	var buf [8]byte
	write := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	write(float64(len(j.Times)))
	for _, v := range j.Times {
		write(v)
	}
	write(float64(len(j.Widths)))
	for _, v := range j.Widths {
		write(v)
	}
	write(cfg.Gap)
	write(cfg.Step)
	write(cfg.Scale)

	binary.LittleEndian.PutUint64(buf[:], d.Sum64())
	return string(buf[:])
}

// Result is delivered once per submitted job.
type Result struct {
	ID     string
	Track  *Track
	Err    error
	Cached bool
}

type request struct {
	ctx context.Context
	id  string
	key string
	job Job
	out chan Result
}

type poolConfig struct {
	cacheTTL time.Duration
	logger   *slog.Logger
}

// PoolOption configures a Pool.
type PoolOption func(*poolConfig)

// WithCacheTTL sets how long finished tracks stay cached. Non-positive
// values are ignored.
func WithCacheTTL(ttl time.Duration) PoolOption {
	return func(cfg *poolConfig) {
		if ttl > 0 {
			cfg.cacheTTL = ttl
		}
	}
}

// WithLogger sets the logger used for build diagnostics. Nil is ignored.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(cfg *poolConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Pool builds Tracks on a fixed number of worker goroutines.
type Pool struct {
	logger *slog.Logger
	cache  *cache.Cache
	size   int

	mu     sync.RWMutex
	closed bool
	jobs   chan request
	wg     sync.WaitGroup
}

// NewPool starts a pool with size workers. A non-positive size uses the
// number of CPUs, capped at four.
func NewPool(size int, opts ...PoolOption) *Pool {
	if size <= 0 {
		size = min(runtime.NumCPU(), maxDefaultWorkers)
	}
	size = max(size, 1)

	cfg := poolConfig{
		cacheTTL: defaultCacheTTL,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := &Pool{
		logger: cfg.logger,
		cache:  cache.New(cfg.cacheTTL, 2*cfg.cacheTTL),
		size:   size,
		jobs:   make(chan request, size),
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker(i)
	}

	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Submit queues job and returns its ID together with a channel that receives
// exactly one Result. Cached tracks are delivered without queueing.
func (p *Pool) Submit(ctx context.Context, job Job) (string, <-chan Result) {
	id := uuid.NewString()
	out := make(chan Result, 1)
	key := job.key()

	if v, ok := p.cache.Get(key); ok {
		p.logger.Debug("track cache hit", "id", id)
		out <- Result{ID: id, Track: v.(*Track), Cached: true}
		return id, out
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		out <- Result{ID: id, Err: ErrPoolClosed}
		return id, out
	}

	select {
	case p.jobs <- request{ctx: ctx, id: id, key: key, job: job, out: out}:
	case <-ctx.Done():
		out <- Result{ID: id, Err: ctx.Err()}
	}

	return id, out
}

// Run submits job and waits for its Track.
func (p *Pool) Run(ctx context.Context, job Job) (*Track, error) {
	_, ch := p.Submit(ctx, job)
	select {
	case res := <-ch:
		return res.Track, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting jobs and waits for queued jobs to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.cache.Flush()
}

func (p *Pool) worker(n int) {
	defer p.wg.Done()

	for req := range p.jobs {
		if err := req.ctx.Err(); err != nil {
			req.out <- Result{ID: req.id, Err: err}
			continue
		}

		start := time.Now()
		track, err := NewTrack(req.job.Times, req.job.Widths, req.job.options()...)
		if err != nil {
			p.logger.Warn("track build failed", "id", req.id, "worker", n, "error", err)
			req.out <- Result{ID: req.id, Err: err}
			continue
		}

		p.cache.SetDefault(req.key, track)
		p.logger.Debug("track built",
			"id", req.id,
			"worker", n,
			"blocks", len(req.job.Times),
			"elapsed", time.Since(start),
		)
		req.out <- Result{ID: req.id, Track: track}
	}
}
