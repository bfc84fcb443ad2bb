package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"text/tabwriter"
	"time"

	"github.com/automoto/nightrain/shared/ninja"
	"github.com/automoto/nightrain/shared/sim"
)

// Loop feeds scripted inputs to a simulation and prints every tick.
type Loop struct {
	sim      *sim.Simulation[image.Image]
	tickRate int // 0 runs as fast as possible
	out      io.Writer
}

func NewLoop(s *sim.Simulation[image.Image], tickRate int, out io.Writer) *Loop {
	return &Loop{sim: s, tickRate: tickRate, out: out}
}

// Run steps once per input and returns the produced ticks. It stops early
// when ctx is cancelled.
func (l *Loop) Run(ctx context.Context, inputs []ninja.Input) ([]sim.Tick[image.Image], error) {
	var ticker *time.Ticker
	if l.tickRate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
	}

	tw := tabwriter.NewWriter(l.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "tick\tstate\tframe\tx\ty\tvy\tdash\tcooldown\tslash\tshuriken\t")

	ticks := make([]sim.Tick[image.Image], 0, len(inputs))
	for _, in := range inputs {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ticks, tw.Flush()
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return ticks, tw.Flush()
		}

		t := l.sim.Step(in)
		ticks = append(ticks, t)
		writeTick(tw, t)
	}
	return ticks, tw.Flush()
}

func writeTick(w io.Writer, t sim.Tick[image.Image]) {
	frame := fmt.Sprintf("%s[%d]", t.Frame.State, t.Frame.Index)
	if t.Frame.Mirrored {
		frame += " <"
	}
	s := t.State
	fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.2f\t%.2f\t%d\t%d\t%d\t%d\t\n",
		t.Number, t.Outcome.State, frame, s.X, s.Y, s.SpeedY,
		s.Dash.Active, s.Dash.Cooldown, s.Slash.Active, s.Shuriken.Active)
}
