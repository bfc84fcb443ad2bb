package gameconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for id := Idle; id < StateCount; id++ {
		got, err := ParseState(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	got, err := ParseState("  SLASH ")
	require.NoError(t, err)
	assert.Equal(t, Slash, got)

	_, err = ParseState("wallslide")
	assert.Error(t, err)
	assert.Equal(t, "unknown", StateID(42).String())
	assert.Equal(t, "unknown", StateNone.String())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("dash")
	require.NoError(t, err)
	assert.Equal(t, ActionDash, a)

	_, err = ParseAction("none")
	assert.Error(t, err)
	_, err = ParseAction("fly")
	assert.Error(t, err)
}

func TestOneShot(t *testing.T) {
	for id := Idle; id < StateCount; id++ {
		assert.Equal(t, id == Slash || id == Shuriken, OneShot(id), id.String())
	}
}

func TestPlayDuration(t *testing.T) {
	assert.Equal(t, 30, NinjaAnimations.PlayDuration(Slash))
	assert.Equal(t, 20, NinjaAnimations.PlayDuration(Shuriken))
	// 4 frames at 9.3 ticks = 37.2, rounded up
	assert.Equal(t, 38, NinjaAnimations.PlayDuration(Climb))
	assert.Equal(t, 0, NinjaAnimations.PlayDuration(StateNone))
}

func TestNinjaAnimationsFitSheet(t *testing.T) {
	for id, def := range NinjaAnimations {
		require.NotEmpty(t, def.Cells, StateID(id).String())
		assert.Greater(t, def.Speed, 0.0)
		for _, c := range def.Cells {
			assert.Less(t, c.Row, NinjaSheet.Rows)
			assert.Less(t, c.Col, NinjaSheet.Cols)
		}
	}
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, tu Tuning)
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, tu Tuning) {
				assert.Equal(t, DefaultTuning(), tu)
			},
		},
		{
			name: "partial override",
			yaml: "gravity: 1.5\ndash_cooldown: 10\n",
			check: func(t *testing.T, tu Tuning) {
				assert.Equal(t, 1.5, tu.Gravity)
				assert.Equal(t, 10, tu.DashCooldown)
				assert.Equal(t, -19.0, tu.JumpSpeed)
			},
		},
		{
			name:    "positive jump speed rejected",
			yaml:    "jump_speed: 19\n",
			wantErr: ErrInvalidTuning,
		},
		{
			name:    "negative cooldown rejected",
			yaml:    "slash_cooldown: -1\n",
			wantErr: ErrInvalidTuning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, err := ParseTuning([]byte(tt.yaml))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			tt.check(t, tu)
		})
	}

	_, err := ParseTuning([]byte("gravity: [1, 2]"))
	assert.Error(t, err)
}

func TestLoadTuning(t *testing.T) {
	tu, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tu)

	path := filepath.Join(t.TempDir(), "ninja.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run_speed: 9\n"), 0o644))
	tu, err = LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 9.0, tu.RunSpeed)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
