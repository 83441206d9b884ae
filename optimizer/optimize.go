package optimizer

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/katalvlaran/passivetree/aggregate"
	"github.com/katalvlaran/passivetree/allocator"
	"github.com/katalvlaran/passivetree/scoring"
	"github.com/katalvlaran/passivetree/tree"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("optimizer: graph is nil")

const instrumentationName = "github.com/katalvlaran/passivetree/optimizer"

// Optimize computes a budgeted, connected allocation of g for cfg.
//
// Implementation:
//   - Stage 1: validate cfg and resolve the class start node.
//   - Stage 2: build the scoring engine once for the run.
//   - Stage 3: seed required keystones, expand greedily, optionally refine.
//   - Stage 4: aggregate contributions, stat summary and efficiency.
//
// The graph is only read; any number of Optimize calls may share it.
func Optimize(ctx context.Context, g *tree.Graph, cfg Config, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	ctx, span := o.TracerProvider.Tracer(instrumentationName).Start(ctx, "optimizer.Optimize")
	defer span.End()
	span.SetAttributes(
		attribute.String("build.class", cfg.Class),
		attribute.Int("build.point_budget", cfg.PointBudget),
		attribute.Int("build.required_keystones", len(cfg.RequiredKeystones)),
	)

	res, err := optimize(ctx, g, cfg, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("result.points", res.TotalPoints),
		attribute.Int("result.efficiency", res.Efficiency),
		attribute.Int("result.warnings", len(res.Warnings)),
	)
	span.SetStatus(codes.Ok, "")

	return res, nil
}

func optimize(ctx context.Context, g *tree.Graph, cfg Config, o Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := g.StartNode(cfg.Class)
	if err != nil {
		return nil, err
	}

	log := o.Logger.With(zap.String("class", start.Class), zap.String("start", start.NodeID))
	engine := scoring.New(cfg.Build())

	alloc, err := allocator.New(g, engine, start.NodeID, cfg.PointBudget,
		allocator.WithLogger(log), allocator.WithRefinement(o.Refinement))
	if err != nil {
		return nil, fmt.Errorf("optimizer: %w", err)
	}
	run, err := alloc.Run(ctx, cfg.RequiredKeystones)
	if err != nil {
		return nil, err
	}

	sum, err := aggregate.Aggregate(g, engine, run.Start, run.Nodes, run.Spent)
	if err != nil {
		return nil, fmt.Errorf("optimizer: %w", err)
	}
	log.Debug("build optimised",
		zap.Int("points", run.Spent),
		zap.Int("budget", cfg.PointBudget),
		zap.Int("efficiency", sum.Efficiency),
		zap.Int("warnings", len(run.Warnings)))

	return &Result{
		Class:          start.Class,
		StartNode:      start.NodeID,
		AllocatedNodes: sum.Entries,
		TotalPoints:    sum.TotalPoints,
		PointBudget:    cfg.PointBudget,
		OffenseScore:   sum.OffenseScore,
		DefenseScore:   sum.DefenseScore,
		Efficiency:     sum.Efficiency,
		StatSummary:    sum.StatSummary,
		Warnings:       run.Warnings,
		Iterations:     run.Iterations,
		Swaps:          run.Swaps,
	}, nil
}
