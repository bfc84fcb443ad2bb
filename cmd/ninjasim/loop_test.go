package main

import (
	"bytes"
	"context"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/ninja"
	"github.com/automoto/nightrain/shared/replay"
	"github.com/automoto/nightrain/shared/sim"
	"github.com/automoto/nightrain/shared/spritesheet"
)

var tinySheet = gameconfig.SheetLayout{TileWidth: 8, TileHeight: 8, Cols: 4, Rows: 5}

func newTestSim(t *testing.T) *sim.Simulation[image.Image] {
	t.Helper()
	table, err := spritesheet.Slice(spritesheet.Placeholder(tinySheet), tinySheet, &gameconfig.NinjaAnimations)
	require.NoError(t, err)
	return sim.New(ninja.DefaultRules(), table)
}

func TestLoopPrintsEveryTick(t *testing.T) {
	script, err := replay.Parse([]byte("steps:\n  - hold: [left]\n    ticks: 2\n  - hold: [dash]\n"))
	require.NoError(t, err)
	inputs, err := script.Inputs()
	require.NoError(t, err)

	var out bytes.Buffer
	ticks, err := NewLoop(newTestSim(t), 0, &out).Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, ticks, 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "tick"))
	assert.Contains(t, lines[1], "run[0] <")
	assert.Contains(t, lines[3], "dash")
	assert.Contains(t, lines[3], "596.0")

	assert.Equal(t, gameconfig.Dash, ticks[2].Outcome.State)
	assert.True(t, ticks[2].Frame.Mirrored)
}

func TestLoopStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	ticks, err := NewLoop(newTestSim(t), 0, &out).Run(ctx, make([]ninja.Input, 10))
	require.NoError(t, err)
	assert.Empty(t, ticks)
}

func TestLoopPaced(t *testing.T) {
	var out bytes.Buffer
	ticks, err := NewLoop(newTestSim(t), 1000, &out).Run(context.Background(), make([]ninja.Input, 3))
	require.NoError(t, err)
	assert.Len(t, ticks, 3)
}
