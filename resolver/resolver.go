package resolver

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// checkEvery is the scan stride between context checks.
const checkEvery = 1 << 16

// Resolver evaluates seeds against one pipeline. Safe for concurrent use.
type Resolver struct {
	p       *remap.Pipeline
	workers int
	log     *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWorkers bounds the number of goroutines per query. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("resolver: WithWorkers(n<1)")
	}
	return func(r *Resolver) {
		r.workers = n
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("resolver: WithLogger(nil)")
	}
	return func(r *Resolver) {
		r.log = l
	}
}

// New returns a Resolver over p.
func New(p *remap.Pipeline, opts ...Option) (*Resolver, error) {
	if p == nil {
		return nil, ErrNilPipeline
	}
	r := &Resolver{
		p:       p,
		workers: runtime.GOMAXPROCS(0),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Workers returns the configured goroutine bound.
func (r *Resolver) Workers() int { return r.workers }

// LowestScalar returns the minimum of Forward(seed) over seeds.
func (r *Resolver) LowestScalar(ctx context.Context, seeds []uint64) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}

	chunks := splitSeeds(seeds, r.workers)
	mins := make([]uint64, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			low := uint64(0)
			for j, s := range chunk {
				if j%checkEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				v := r.p.Forward(s)
				if j == 0 || v < low {
					low = v
				}
			}
			mins[i] = low

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	low := minOf(mins)
	r.log.Info("lowest scalar location",
		zap.Int("seeds", len(seeds)),
		zap.Int("chunks", len(chunks)),
		zap.Uint64("location", low))

	return low, nil
}

// LowestRange pushes set through the pipeline and returns the lowest
// value of the result. Zero-length members are ignored.
func (r *Resolver) LowestRange(ctx context.Context, set interval.Set) (uint64, error) {
	norm := set.Normalize()
	if len(norm) == 0 {
		return 0, ErrNoSeeds
	}

	chunks := norm.Partition(r.workers)
	mins := make([]uint64, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			cur := chunk
			for _, st := range r.p.Stages() {
				if err := gctx.Err(); err != nil {
					return err
				}
				cur = st.Transform(cur)
				r.log.Debug("stage applied",
					zap.Int("chunk", i),
					zap.String("stage", st.Name()),
					zap.Int("intervals", len(cur)))
			}
			low, ok := cur.Min()
			if !ok {
				return fmt.Errorf("resolver: chunk %d lost its values", i)
			}
			mins[i] = low

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	low := minOf(mins)
	r.log.Info("lowest range location",
		zap.Int("intervals", len(norm)),
		zap.Uint64("values", norm.Len()),
		zap.Uint64("location", low))

	return low, nil
}

// ReverseScan tries final values 0, 1, ... below limit, maps each back to
// a seed and returns the first one whose seed lies in set and maps
// forward to it. On a pipeline of bijective stages the answer equals
// LowestRange; otherwise it is an upper bound.
func (r *Resolver) ReverseScan(ctx context.Context, set interval.Set, limit uint64) (uint64, error) {
	if !r.p.Invertible() {
		return 0, ErrNotInvertible
	}
	norm := set.Normalize()
	if len(norm) == 0 {
		return 0, ErrNoSeeds
	}

	for v := uint64(0); v < limit; v++ {
		if v%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		seed := r.p.Reverse(v)
		if norm.Contains(seed) && r.p.Forward(seed) == v {
			r.log.Info("reverse scan hit",
				zap.Uint64("location", v),
				zap.Uint64("seed", seed))

			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: limit=%d", ErrNotFound, limit)
}

// splitSeeds cuts seeds into at most n contiguous chunks whose sizes
// differ by at most one.
func splitSeeds(seeds []uint64, n int) [][]uint64 {
	if n > len(seeds) {
		n = len(seeds)
	}
	out := make([][]uint64, 0, n)
	size, rest := len(seeds)/n, len(seeds)%n
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < rest {
			hi++
		}
		out = append(out, seeds[lo:hi])
		lo = hi
	}

	return out
}

func minOf(vs []uint64) uint64 {
	low := vs[0]
	for _, v := range vs[1:] {
		if v < low {
			low = v
		}
	}

	return low
}
