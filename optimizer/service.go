package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/passivetree/tree"
)

// Service runs builds against one shared graph with result caching, metrics
// and logging. It is safe for concurrent use.
type Service struct {
	graph *tree.Graph
	opts  Options
	log   *zap.Logger
	cache *lru.Cache[string, *Result]
}

// NewService binds a Service to g. A zero cache size disables caching.
func NewService(g *tree.Graph, opts ...Option) (*Service, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	s := &Service{graph: g, opts: o, log: o.Logger}
	if o.CacheSize > 0 {
		s.cache, err = lru.New[string, *Result](o.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("optimizer: result cache: %w", err)
		}
	}

	return s, nil
}

// Graph returns the shared graph.
func (s *Service) Graph() *tree.Graph { return s.graph }

// Optimize runs cfg, or returns a copy of the cached result for an
// equivalent config. Every returned Result carries a fresh RunID.
func (s *Service) Optimize(ctx context.Context, cfg Config) (*Result, error) {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("build", cfg.Name))

	key := cfg.Key()
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.opts.Collector.observeCache(true)
			log.Debug("result cache hit")

			return withRunID(cached, runID), nil
		}
		s.opts.Collector.observeCache(false)
	}

	began := time.Now()
	res, err := Optimize(ctx, s.graph, cfg,
		WithLogger(log),
		WithTracerProvider(s.opts.TracerProvider),
		WithRefinement(s.opts.Refinement))
	elapsed := time.Since(began)
	s.opts.Collector.observeRun(res, elapsed, err)
	if err != nil {
		log.Warn("optimisation failed", zap.Error(err))

		return nil, err
	}
	res.RunID = runID
	for _, w := range res.Warnings {
		log.Info("run warning", zap.String("kind", string(w.Kind)), zap.String("node", w.NodeID))
	}
	log.Info("build optimised",
		zap.String("class", res.Class),
		zap.Int("points", res.TotalPoints),
		zap.Int("budget", res.PointBudget),
		zap.Int("efficiency", res.Efficiency),
		zap.Duration("elapsed", elapsed))

	if s.cache != nil {
		s.cache.Add(key, res)
	}

	return withRunID(res, runID), nil
}

func withRunID(r *Result, id string) *Result {
	cp := *r
	cp.RunID = id

	return &cp
}

// OptimizeAll runs cfgs concurrently with at most Options.Workers runs in
// flight. Results are returned in input order. The first failure cancels
// the remaining runs and is returned.
func (s *Service) OptimizeAll(ctx context.Context, cfgs []Config) ([]*Result, error) {
	out := make([]*Result, len(cfgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, cfg := range cfgs {
		g.Go(func() error {
			res, err := s.Optimize(ctx, cfg)
			if err != nil {
				if cfg.Name != "" {
					return fmt.Errorf("build %q: %w", cfg.Name, err)
				}

				return fmt.Errorf("build %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// CacheLen returns the number of cached results.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}

	return s.cache.Len()
}
