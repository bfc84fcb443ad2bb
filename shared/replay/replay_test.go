package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/ninja"
)

const dashScript = `
name: dash
steps:
  - hold: [right]
    ticks: 2
  - hold: [right, dash]
  - ticks: 3
`

func TestParseDefaultsTicks(t *testing.T) {
	s, err := Parse([]byte(dashScript))
	require.NoError(t, err)
	assert.Equal(t, "dash", s.Name)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, 1, s.Steps[1].Ticks)
	assert.Equal(t, 6, s.Len())
}

func TestInputs(t *testing.T) {
	s, err := Parse([]byte(dashScript))
	require.NoError(t, err)

	inputs, err := s.Inputs()
	require.NoError(t, err)
	require.Len(t, inputs, 6)

	right := ninja.InputOf(gameconfig.ActionMoveRight)
	assert.Equal(t, right, inputs[0])
	assert.Equal(t, right, inputs[1])
	assert.Equal(t, ninja.InputOf(gameconfig.ActionMoveRight, gameconfig.ActionDash), inputs[2])
	for _, in := range inputs[3:] {
		assert.Equal(t, ninja.Input{}, in)
	}
}

func TestInputsRejectsUnknownAction(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - hold: [teleport]\n"))
	require.NoError(t, err)

	_, err = s.Inputs()
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "teleport")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{name: "negative ticks", doc: "steps:\n  - ticks: -2\n", is: ErrBadStep},
		{name: "not yaml", doc: "steps: [", is: nil},
		{name: "wrong shape", doc: "steps: 7\n", is: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestReadAndLoad(t *testing.T) {
	s, err := Read(strings.NewReader(dashScript))
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	path := filepath.Join(t.TempDir(), "dash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dashScript), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dash", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
