// Package replay turns YAML input scripts into per-tick input snapshots so a
// sequence of button presses can be run without a keyboard.
//
//	name: dash and slash
//	steps:
//	  - hold: [right]
//	    ticks: 10
//	  - hold: [dash]
//	  - ticks: 20
//	  - hold: [attack]
//	    ticks: 31
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/ninja"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrBadStep       = errors.New("bad step")
)

// Step holds a set of buttons for a number of ticks. An empty Hold is a wait.
type Step struct {
	Hold  []string `yaml:"hold"`
	Ticks int      `yaml:"ticks"`
}

type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes a script. Steps without ticks last one tick.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i := range s.Steps {
		if s.Steps[i].Ticks == 0 {
			s.Steps[i].Ticks = 1
		}
		if s.Steps[i].Ticks < 0 {
			return nil, fmt.Errorf("%w: step %d has %d ticks", ErrBadStep, i, s.Steps[i].Ticks)
		}
	}
	return &s, nil
}

func Read(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}

// Len is the total number of ticks the script covers.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// Inputs expands the script into one snapshot per tick.
func (s *Script) Inputs() ([]ninja.Input, error) {
	out := make([]ninja.Input, 0, s.Len())
	for i, st := range s.Steps {
		ids := make([]gameconfig.ActionID, 0, len(st.Hold))
		for _, name := range st.Hold {
			id, err := gameconfig.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("%w: step %d: %q", ErrUnknownAction, i, name)
			}
			ids = append(ids, id)
		}
		in := ninja.InputOf(ids...)
		for t := 0; t < st.Ticks; t++ {
			out = append(out, in)
		}
	}
	return out, nil
}
