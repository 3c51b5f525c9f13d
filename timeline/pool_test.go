package timeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spline/spline"
)

func testJob() Job {
	return Job{
		Times:  []float64{0, 1.5, 3, 4},
		Widths: []float64{3, 5, 2, 4},
		Step:   0.01,
	}
}

func TestPoolRun(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	tr, err := p.Run(context.Background(), testJob())
	require.NoError(t, err)

	want, err := NewTrack(testJob().Times, testJob().Widths, WithStep(0.01))
	require.NoError(t, err)
	assert.Equal(t, want.Offset(2.2), tr.Offset(2.2))
	assert.Equal(t, 0.01, tr.Config().Step)
}

func TestPoolSubmitCachesResult(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	ctx := context.Background()
	id1, ch1 := p.Submit(ctx, testJob())
	first := <-ch1
	require.NoError(t, first.Err)
	assert.Equal(t, id1, first.ID)
	assert.False(t, first.Cached)

	id2, ch2 := p.Submit(ctx, testJob())
	second := <-ch2
	require.NoError(t, second.Err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, id2, second.ID)
	assert.True(t, second.Cached)
	assert.Same(t, first.Track, second.Track)
}

func TestPoolDefaultsShareCacheEntry(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	job := Job{Times: []float64{0, 1}, Widths: []float64{1, 1}}
	explicit := job
	explicit.Gap = defaultGap
	explicit.Step = defaultStep

	_, err := p.Run(context.Background(), job)
	require.NoError(t, err)

	_, ch := p.Submit(context.Background(), explicit)
	res := <-ch
	require.NoError(t, res.Err)
	assert.True(t, res.Cached)
}

func TestPoolDistinctJobsDoNotCollide(t *testing.T) {
	a := testJob()
	b := testJob()
	b.Widths = []float64{3, 5, 2, 4.5}
	assert.NotEqual(t, a.key(), b.key())

	c := testJob()
	c.Scale = 2
	assert.NotEqual(t, a.key(), c.key())
}

func TestPoolJobOptions(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	touching := Job{
		Times:   []float64{0, 1, 2},
		Widths:  []float64{2, 2, 2},
		Options: []Option{WithGap(0)},
	}
	tr, err := p.Run(context.Background(), touching)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tr.Config().Gap)
	assert.InDelta(t, 3.0, tr.Offset(1), 1e-12)

	spaced := touching
	spaced.Options = nil
	assert.NotEqual(t, touching.key(), spaced.key())

	tr, err = p.Run(context.Background(), spaced)
	require.NoError(t, err)
	assert.Equal(t, float64(defaultGap), tr.Config().Gap)
}

func TestPoolStepTooSmall(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	_, err := p.Run(context.Background(), Job{Times: []float64{1e16, 1e16 + 4}, Widths: []float64{1, 1}})
	assert.ErrorIs(t, err, ErrStepTooSmall)
}

func TestPoolBuildError(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	tr, err := p.Run(context.Background(), Job{Times: []float64{0, 2, 1}, Widths: []float64{1, 1, 1}})
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, spline.ErrNonMonotonicKnots)

	_, ch := p.Submit(context.Background(), Job{})
	assert.ErrorIs(t, (<-ch).Err, ErrNotEnoughData)
}

func TestPoolCancelledContext(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, testJob())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoolClosed(t *testing.T) {
	p := NewPool(1)
	p.Close()
	p.Close()

	_, err := p.Run(context.Background(), testJob())
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolConcurrentSubmit(t *testing.T) {
	p := NewPool(4, WithCacheTTL(time.Minute))
	defer p.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			job := Job{
				Times:  []float64{0, 1, 2},
				Widths: []float64{1, float64(i + 1), 1},
			}
			tr, err := p.Run(context.Background(), job)
			if err != nil {
				errs <- err
				return
			}
			if got, want := tr.Offset(1), 1+float64(i+1)/2+defaultGap; got != want {
				errs <- fmt.Errorf("job %d: Offset(1) = %v, want %v", i, got, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestPoolSize(t *testing.T) {
	p := NewPool(3)
	defer p.Close()
	assert.Equal(t, 3, p.Size())

	d := NewPool(0)
	defer d.Close()
	assert.GreaterOrEqual(t, d.Size(), 1)
	assert.LessOrEqual(t, d.Size(), maxDefaultWorkers)
}

func TestPoolLogsBuilds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewPool(1, WithLogger(logger))
	defer p.Close()

	_, err := p.Run(context.Background(), testJob())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "track built")
}
