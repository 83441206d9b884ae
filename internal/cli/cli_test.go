package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/passivetree/internal/app"
	"github.com/katalvlaran/passivetree/internal/cli"
	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/profile"
)

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{
		"-tree", "tree.json", "-profile", "builds.hcl",
		"-build", "a, b,,c", "-refine", "3", "-workers", "8",
		"-format", "JSON", "-out", "res.json", "-log-level", "debug", "-log-format", "json",
	}, &out, map[string]string{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "tree.json", cfg.TreePath)
	assert.Equal(t, "builds.hcl", cfg.ProfilePath)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Builds)
	assert.Equal(t, 3, cfg.Refine)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, app.FormatJSON, cfg.Format)
	assert.Equal(t, "res.json", cfg.OutPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_EnvDefaults(t *testing.T) {
	environ := map[string]string{
		"TREEOPT_TREE":      "env-tree.json",
		"TREEOPT_PROFILE":   "env.yaml",
		"TREEOPT_WORKERS":   "6",
		"TREEOPT_LOG_LEVEL": "warn",
		"TREEOPT_BUILDS":    "x",
	}

	cfg, _, err := cli.Parse(nil, &bytes.Buffer{}, environ)
	require.NoError(t, err)
	assert.Equal(t, "env-tree.json", cfg.TreePath)
	assert.Equal(t, "env.yaml", cfg.ProfilePath)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"x"}, cfg.Builds)
	assert.Equal(t, app.FormatText, cfg.Format)
	assert.Equal(t, "console", cfg.LogFormat)

	cfg, _, err = cli.Parse([]string{"-workers", "1"}, &bytes.Buffer{}, environ)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers, "flags override the environment")
}

func TestParse_UsageAndHelp(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out, map[string]string{})
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "treeopt - budgeted passive tree optimiser")

	_, exit, err = cli.Parse([]string{"-h"}, &bytes.Buffer{}, map[string]string{})
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		environ map[string]string
	}{
		"unknown flag":     {args: []string{"-nope"}},
		"stray argument":   {args: []string{"-tree", "t.json", "-profile", "p.hcl", "extra"}},
		"bad format":       {args: []string{"-tree", "t.json", "-profile", "p.hcl", "-format", "xml"}},
		"zero workers":     {args: []string{"-tree", "t.json", "-profile", "p.hcl", "-workers", "0"}},
		"missing profile":  {args: []string{"-tree", "t.json"}},
		"malformed env":    {environ: map[string]string{"TREEOPT_WORKERS": "many"}},
		"bad env loglevel": {args: []string{"-tree", "t.json", "-profile", "p.hcl"}, environ: map[string]string{"TREEOPT_LOG_LEVEL": "loud"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			environ := tc.environ
			if environ == nil {
				environ = map[string]string{}
			}
			_, _, err := cli.Parse(tc.args, &bytes.Buffer{}, environ)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, cli.ExitUsage, exitErr.Code)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, cli.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TREEOPT_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("TREEOPT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("TREEOPT_TEST_DOTENV"))

	require.NoError(t, cli.LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("TREEOPT_TEST_DOTENV"))
}

func TestCode(t *testing.T) {
	assert.Equal(t, 0, cli.Code(nil))
	assert.Equal(t, cli.ExitUsage, cli.Code(&cli.ExitError{Code: cli.ExitUsage, Message: "x"}))
	assert.Equal(t, cli.ExitUsage, cli.Code(fmt.Errorf("build %q: %w", "a", optimizer.ErrInvalidConfig)))
	assert.Equal(t, cli.ExitUsage, cli.Code(profile.ErrBuildNotFound))
	assert.Equal(t, cli.ExitRuntime, cli.Code(errors.New("disk on fire")))
}
