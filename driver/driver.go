// Package driver runs the MIPS interpreter in bounded step batches on
// the Akita event engine.
//
// A single unbounded run call monopolizes its thread for the whole
// cycle budget. The driver instead executes a fixed number of steps
// per tick of a sim.TickingComponent, so an embedding simulation stays
// responsive between batches. Results are identical to a direct run:
// execution is single-threaded and deterministic, only the batching
// differs.
package driver

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/zshdevopscatftw/r4ksim/emu"
)

// Driver executes an emulator in batches as an Akita ticking
// component.
type Driver struct {
	*sim.TickingComponent

	emulator *emu.Emulator
	engine   sim.Engine
	config   *Config

	finished bool
}

// NewDriver creates a Driver for the given emulator on a fresh serial
// engine.
func NewDriver(emulator *emu.Emulator, config *Config) (*Driver, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid driver config: %w", err)
	}

	d := &Driver{
		emulator: emulator,
		engine:   sim.NewSerialEngine(),
		config:   config,
	}
	d.TickingComponent = sim.NewTickingComponent(
		"Driver",
		d.engine,
		sim.Freq(config.FreqMHz)*sim.MHz,
		d,
	)

	return d, nil
}

// Tick executes one batch of interpreter steps. It reports whether
// another batch is needed.
func (d *Driver) Tick() bool {
	if d.finished {
		return false
	}

	for i := 0; i < d.config.BatchSize; i++ {
		if !d.emulator.Step() || d.emulator.CycleCount() >= d.config.MaxCycles {
			d.finished = true
			return false
		}
	}

	return true
}

// Finished reports whether the driven run has completed.
func (d *Driver) Finished() bool {
	return d.finished
}

// Run drives the emulator to completion and returns the derived seed,
// exactly as a direct emulator run would.
func (d *Driver) Run() (uint32, error) {
	d.TickLater()

	if err := d.engine.Run(); err != nil {
		return 0, fmt.Errorf("engine run failed: %w", err)
	}

	return d.emulator.Seed(), nil
}
