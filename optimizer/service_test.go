package optimizer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/tree"
)

func TestNewService_Errors(t *testing.T) {
	_, err := optimizer.NewService(nil)
	assert.ErrorIs(t, err, optimizer.ErrGraphNil)

	g := fixture(t)
	_, err = optimizer.NewService(g, optimizer.WithWorkers(0))
	assert.ErrorIs(t, err, optimizer.ErrInvalidConfig)
	_, err = optimizer.NewService(g, optimizer.WithCacheSize(-1))
	assert.ErrorIs(t, err, optimizer.ErrInvalidConfig)
}

func TestService_CachesEquivalentConfigs(t *testing.T) {
	metrics := optimizer.NewCollector("treeopt")
	svc, err := optimizer.NewService(fixture(t), optimizer.WithCollector(metrics))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Optimize(ctx, optimizer.NewConfig("witch", 1, 2))
	require.NoError(t, err)
	second, err := svc.Optimize(ctx, optimizer.NewConfig("Invoker", 1, 2))
	require.NoError(t, err)

	assert.Equal(t, first.IDs(), second.IDs())
	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 1, svc.CacheLen())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs.WithLabelValues(optimizer.StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs.WithLabelValues(optimizer.StatusCached)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.PointsSpent))
}

func TestService_CacheDisabled(t *testing.T) {
	svc, err := optimizer.NewService(fixture(t), optimizer.WithCacheSize(0))
	require.NoError(t, err)

	_, err = svc.Optimize(context.Background(), optimizer.NewConfig("witch", 1, 1))
	require.NoError(t, err)
	assert.Zero(t, svc.CacheLen())
}

func TestService_Metrics(t *testing.T) {
	metrics := optimizer.NewCollector("treeopt")
	svc, err := optimizer.NewService(fixture(t), optimizer.WithCollector(metrics))
	require.NoError(t, err)
	ctx := context.Background()

	cfg := optimizer.NewConfig("witch", 1, 2)
	cfg.RequiredKeystones = []string{"K1", "missing"}
	_, err = svc.Optimize(ctx, cfg)
	require.NoError(t, err)
	_, err = svc.Optimize(ctx, optimizer.NewConfig("paladin", 1, 1))
	require.ErrorIs(t, err, tree.ErrNoStartNode)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs.WithLabelValues(optimizer.StatusFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Warnings.WithLabelValues("keystone_unreachable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Warnings.WithLabelValues("keystone_not_found")))

	expected := `
# HELP treeopt_runs_total Total number of optimisation runs by status
# TYPE treeopt_runs_total counter
treeopt_runs_total{status="failed"} 1
treeopt_runs_total{status="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected), "treeopt_runs_total"))
}

func TestService_OptimizeAll(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc, err := optimizer.NewService(fixture(t),
		optimizer.WithLogger(zap.New(core)),
		optimizer.WithWorkers(2))
	require.NoError(t, err)

	cfgs := make([]optimizer.Config, 0, 6)
	for budget := 0; budget < 6; budget++ {
		cfg := optimizer.NewConfig("witch", 0.5, budget)
		cfg.Name = fmt.Sprintf("b%d", budget)
		cfgs = append(cfgs, cfg)
	}

	results, err := svc.OptimizeAll(context.Background(), cfgs)
	require.NoError(t, err)
	require.Len(t, results, len(cfgs))
	for i, res := range results {
		assert.LessOrEqual(t, res.TotalPoints, cfgs[i].PointBudget)
		require.NoError(t, res.Validate(svc.Graph()))
	}
	assert.Equal(t, len(cfgs), logs.FilterMessage("build optimised").Len())
}

func TestService_OptimizeAllFailsFast(t *testing.T) {
	svc, err := optimizer.NewService(fixture(t))
	require.NoError(t, err)

	bad := optimizer.NewConfig("witch", 1, 1)
	bad.Name = "broken"
	bad.OffenseWeight = 2

	_, err = svc.OptimizeAll(context.Background(), []optimizer.Config{optimizer.NewConfig("witch", 1, 1), bad})
	require.ErrorIs(t, err, optimizer.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `build "broken"`)
}
