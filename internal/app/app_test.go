package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/passivetree/internal/app"
	"github.com/katalvlaran/passivetree/profile"
	"github.com/katalvlaran/passivetree/tree"
)

func config(t *testing.T, mutate func(*app.Config)) *app.Config {
	t.Helper()
	c := app.Config{
		TreePath:    "testdata/tree.json",
		ProfilePath: "testdata/builds.yaml",
		Workers:     2,
		Format:      "text",
		LogLevel:    "debug",
		LogFormat:   "json",
	}
	if mutate != nil {
		mutate(&c)
	}
	cfg, err := app.NewConfig(c)
	require.NoError(t, err)

	return cfg
}

func TestNewConfig(t *testing.T) {
	base := app.Config{TreePath: "t.json", ProfilePath: "p.hcl", Workers: 1, Format: "JSON", LogLevel: "Info", LogFormat: "console"}

	cfg, err := app.NewConfig(base)
	require.NoError(t, err)
	assert.Equal(t, app.FormatJSON, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)

	tests := map[string]func(*app.Config){
		"no tree":         func(c *app.Config) { c.TreePath = "" },
		"no profile":      func(c *app.Config) { c.ProfilePath = "" },
		"negative refine": func(c *app.Config) { c.Refine = -1 },
		"no workers":      func(c *app.Config) { c.Workers = 0 },
		"bad format":      func(c *app.Config) { c.Format = "xml" },
		"bad log format":  func(c *app.Config) { c.LogFormat = "text" },
		"bad log level":   func(c *app.Config) { c.LogLevel = "trace" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			_, err := app.NewConfig(c)
			assert.ErrorIs(t, err, app.ErrConfig)
		})
	}

	listing := base
	listing.ProfilePath = ""
	listing.ListKeystones = true
	_, err = app.NewConfig(listing)
	assert.NoError(t, err)
}

func TestRun_Text(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, app.NewApp(&out, &logs, config(t, nil)).Run(context.Background()))

	assert.Contains(t, out.String(), "== caster ==")
	assert.Contains(t, out.String(), "== tank ==")
	assert.Contains(t, out.String(), "Chaos Inoculation")
	assert.Contains(t, logs.String(), `"msg":"tree loaded"`)
	assert.Contains(t, logs.String(), `"msg":"build optimised"`)
}

func TestRun_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	cfg := config(t, func(c *app.Config) {
		c.Format = "json"
		c.OutPath = path
		c.Builds = []string{"tank"}
		c.Refine = 2
	})

	var out, logs bytes.Buffer
	require.NoError(t, app.NewApp(&out, &logs, cfg).Run(context.Background()))
	assert.Zero(t, out.Len())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var docs []struct {
		Config struct {
			Name              string   `json:"name"`
			RequiredKeystones []string `json:"requiredKeystones"`
		} `json:"config"`
		Result struct {
			StartNode string `json:"startNode"`
			Nodes     []struct {
				ID string `json:"id"`
			} `json:"allocatedNodes"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "tank", docs[0].Config.Name)
	assert.Equal(t, []string{"ci"}, docs[0].Config.RequiredKeystones)
	assert.Equal(t, "ws", docs[0].Result.StartNode)
	assert.Equal(t, "ci", docs[0].Result.Nodes[0].ID)
}

func TestRun_ListKeystones(t *testing.T) {
	cfg := config(t, func(c *app.Config) {
		c.ProfilePath = ""
		c.ListKeystones = true
	})

	var out, logs bytes.Buffer
	require.NoError(t, app.NewApp(&out, &logs, cfg).Run(context.Background()))
	assert.Contains(t, out.String(), "Offense (1)\n  eb")
	assert.Contains(t, out.String(), "Defense (1)\n  ci")
}

func TestRun_Errors(t *testing.T) {
	var out, logs bytes.Buffer

	err := app.NewApp(&out, &logs, config(t, func(c *app.Config) { c.TreePath = "testdata/missing.json" })).Run(context.Background())
	assert.Error(t, err)

	err = app.NewApp(&out, &logs, config(t, func(c *app.Config) { c.Builds = []string{"nope"} })).Run(context.Background())
	assert.ErrorIs(t, err, profile.ErrBuildNotFound)

	err = app.NewApp(&out, &logs, config(t, func(c *app.Config) { c.TreePath = "testdata/builds.yaml" })).Run(context.Background())
	assert.ErrorIs(t, err, tree.ErrGraphParse)
}
