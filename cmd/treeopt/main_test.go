package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/passivetree/internal/cli"
)

func TestRun(t *testing.T) {
	var out, errW bytes.Buffer
	err := run(context.Background(), &out, &errW, []string{
		"-tree", "../../internal/app/testdata/tree.json",
		"-profile", "../../internal/app/testdata/builds.yaml",
		"-build", "caster",
		"-log-level", "error",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "== caster ==")
	assert.NotContains(t, out.String(), "== tank ==")
}

func TestRun_ExitCodes(t *testing.T) {
	var out, errW bytes.Buffer

	err := run(context.Background(), &out, &errW, []string{"-format", "xml", "-tree", "t.json", "-profile", "p.yaml"})
	assert.Equal(t, cli.ExitUsage, cli.Code(err))

	err = run(context.Background(), &out, &errW, []string{"-tree", "missing.json", "-profile", "p.yaml"})
	assert.Equal(t, cli.ExitRuntime, cli.Code(err))
}
