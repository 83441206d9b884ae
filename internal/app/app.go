package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/passivetree/internal/report"
	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/profile"
	"github.com/katalvlaran/passivetree/treedata"
)

// App is one command line invocation.
type App struct {
	out io.Writer
	cfg *Config
	log *zap.Logger
}

// NewApp returns an App writing results to out and logs to logW.
func NewApp(out, logW io.Writer, cfg *Config) *App {
	return &App{
		out: out,
		cfg: cfg,
		log: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() { _ = a.log.Sync() }()

	began := time.Now()
	g, err := treedata.Load(a.cfg.TreePath)
	if err != nil {
		return err
	}
	a.log.Info("tree loaded",
		zap.String("path", a.cfg.TreePath),
		zap.Int("nodes", g.Len()),
		zap.Int("components", len(g.Components())),
		zap.Int("keystones", len(g.Keystones())),
		zap.Duration("elapsed", time.Since(began)))

	out, closeOut, err := a.output()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if a.cfg.ListKeystones {
		return report.New(out).Keystones(g)
	}

	cfgs, err := profile.NewLoader(g).LoadFile(a.cfg.ProfilePath)
	if err != nil {
		return err
	}
	if cfgs, err = profile.Select(cfgs, a.cfg.Builds...); err != nil {
		return err
	}
	a.log.Info("profile loaded", zap.String("path", a.cfg.ProfilePath), zap.Int("builds", len(cfgs)))

	svc, err := optimizer.NewService(g,
		optimizer.WithLogger(a.log),
		optimizer.WithRefinement(a.cfg.Refine),
		optimizer.WithWorkers(a.cfg.Workers))
	if err != nil {
		return err
	}
	results, err := svc.OptimizeAll(ctx, cfgs)
	if err != nil {
		return err
	}

	return a.write(out, cfgs, results)
}

func (a *App) write(out io.Writer, cfgs []optimizer.Config, results []*optimizer.Result) error {
	if a.cfg.Format == FormatJSON {
		docs := make([]optimizer.Document, len(results))
		for i, res := range results {
			docs[i] = optimizer.NewDocument(cfgs[i], res)
		}

		return optimizer.ExportAll(out, docs)
	}

	rw := report.New(out)
	for i, res := range results {
		if err := rw.Result(cfgs[i], res); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) output() (io.Writer, func() error, error) {
	if a.cfg.OutPath == "" || a.cfg.OutPath == "-" {
		return a.out, func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.OutPath)
	if err != nil {
		return nil, nil, fmt.Errorf("app: %w", err)
	}

	return f, f.Close, nil
}
