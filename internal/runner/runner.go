// SPDX-License-Identifier: MIT

// Package runner drives hypervolume computations over a sequence of fronts
// with a bounded worker pool, logging and metrics.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/wfg"
)

var (
	// ErrReference indicates a reference point whose length differs from the
	// objective count of a front. It wraps wfg.ErrDimensionMismatch.
	ErrReference = fmt.Errorf("runner: reference point: %w", wfg.ErrDimensionMismatch)

	// ErrMaximize indicates a maximized objective index outside a front.
	// It wraps wfg.ErrDimensionMismatch.
	ErrMaximize = fmt.Errorf("runner: maximized objective: %w", wfg.ErrDimensionMismatch)
)

// Config describes one run.
//
// Fields:
//   - Reference     — reference point; nil means the origin of every front.
//   - Options       — engine options shared by all workers, applied over
//     wfg.DefaultOptions(); nil means the defaults.
//   - Maximize      — zero-indexed objectives to maximize while every other
//     one is minimized; overrides the sense of Options when non-empty.
//   - Jobs          — worker count; values < 1 mean 1.
//   - Contributions — also compute per-point exclusive contributions.
type Config struct {
	Reference     front.Point
	Options       []wfg.Option
	Maximize      []int
	Jobs          int
	Contributions bool
}

// Result is the outcome of one front, reported in input order.
type Result struct {
	Index         int
	Points        int
	Objectives    int
	Hypervolume   float64
	Contributions []float64
	Elapsed       time.Duration
}

// Runner computes hypervolumes for many fronts.
type Runner struct {
	cfg     Config
	opts    wfg.Options // resolved engine options
	optsErr error
	log     *Logger
	metrics *Metrics
	runID   string
}

// New returns a Runner. A nil logger discards output; nil metrics record nothing.
// Invalid Options are reported by Run.
func New(cfg Config, log *Logger, metrics *Metrics) *Runner {
	if log == nil {
		log = NoopLogger()
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	cfg.Maximize = append([]int(nil), cfg.Maximize...)
	opts, err := wfg.ResolveOptions(cfg.Options...)
	if len(cfg.Maximize) > 0 {
		// Minimized objectives are mirrored so the engine maximizes everything.
		opts.Sense = front.Maximize
	}
	id := uuid.NewString()

	return &Runner{cfg: cfg, opts: opts, optsErr: err, log: log.WithRun(id), metrics: metrics, runID: id}
}

// RunID identifies this runner in logs and reports.
func (r *Runner) RunID() string { return r.runID }

// Config returns the configuration with defaults applied.
func (r *Runner) Config() Config { return r.cfg }

// Options returns the engine options every worker computes with.
func (r *Runner) Options() wfg.Options { return r.opts }

// Mixed reports whether objectives are maximized and minimized per index.
func (r *Runner) Mixed() bool { return len(r.cfg.Maximize) > 0 }

// Run computes every front and returns the results in input order.
//
// Stage 1 (Validate): options must resolve; every front must match the
// reference length and hold every maximized objective.
// Stage 2 (Execute): Jobs workers pull front indices from a channel; each
// worker owns one wfg.Computation sized for the largest front, rebuilt only
// when the objective count changes.
//
// The first failing front cancels the run.
func (r *Runner) Run(ctx context.Context, fronts []*front.Front) ([]Result, error) {
	start := time.Now()
	results, err := r.run(ctx, fronts)
	r.log.LogRun(ctx, len(fronts), time.Since(start), err)

	return results, err
}

func (r *Runner) run(ctx context.Context, fronts []*front.Front) ([]Result, error) {
	if r.optsErr != nil {
		return nil, fmt.Errorf("runner: options: %w", r.optsErr)
	}
	// Largest front per objective count sizes every worker's Computation once.
	capacity := make(map[int]int)
	for i, f := range fronts {
		if f == nil || f.Len() == 0 {
			return nil, fmt.Errorf("runner: front %d: %w", i+1, wfg.ErrEmptyFront)
		}
		n := f.Objectives()
		if r.cfg.Reference != nil && len(r.cfg.Reference) != n {
			return nil, fmt.Errorf("front %d has %d objectives, reference has %d: %w",
				i+1, n, len(r.cfg.Reference), ErrReference)
		}
		for _, j := range r.cfg.Maximize {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("front %d has %d objectives, cannot maximize objective %d: %w",
					i+1, n, j, ErrMaximize)
			}
		}
		capacity[n] = max(capacity[n], f.Len())
	}

	results := make([]Result, len(fronts))
	g, ctx := errgroup.WithContext(ctx)
	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := range fronts {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < min(r.cfg.Jobs, max(len(fronts), 1)); w++ {
		g.Go(func() error {
			var c *wfg.Computation
			for i := range next {
				f := fronts[i]
				n := f.Objectives()
				if c == nil || c.Objectives() != n {
					var err error
					if c, err = wfg.NewComputation(n, capacity[n], wfg.WithOptions(r.opts)); err != nil {
						r.metrics.Observe(f.Len(), 0, err)
						r.log.LogFront(ctx, i+1, f.Len(), n, 0, 0, err)

						return fmt.Errorf("front %d: %w", i+1, err)
					}
				}
				res, err := r.compute(c, i, f)
				r.metrics.Observe(f.Len(), res.Elapsed, err)
				r.log.LogFront(ctx, i+1, f.Len(), n, res.Hypervolume, res.Elapsed, err)
				if err != nil {
					return fmt.Errorf("front %d: %w", i+1, err)
				}
				results[i] = res
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) compute(c *wfg.Computation, i int, f *front.Front) (Result, error) {
	ref := r.cfg.Reference
	if ref == nil {
		ref = make(front.Point, f.Objectives())
	}
	res := Result{Index: i, Points: f.Len(), Objectives: f.Objectives()}
	if r.Mixed() {
		f, ref = r.mirror(f, ref)
	}

	start := time.Now()
	hv, err := c.Hypervolume(f, ref)
	if err == nil && r.cfg.Contributions {
		res.Contributions, err = c.Contributions(f, ref)
	}
	res.Elapsed = time.Since(start)
	res.Hypervolume = hv

	return res, err
}

// mirror returns copies of f and ref with every objective outside
// Config.Maximize negated; minimizing v is maximizing -v, so volumes and
// contributions are unchanged.
func (r *Runner) mirror(f *front.Front, ref front.Point) (*front.Front, front.Point) {
	keep := make([]bool, f.Objectives())
	for _, j := range r.cfg.Maximize {
		keep[j] = true
	}
	g, p := f.Clone(), ref.Clone()
	for j, maximized := range keep {
		if maximized {
			continue
		}
		p[j] = -p[j]
		for _, q := range g.Points() {
			q[j] = -q[j]
		}
	}

	return g, p
}
