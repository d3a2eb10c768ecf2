// Package replay loads a static, deterministic process schedule from TOML
// using github.com/BurntSushi/toml, and registers synthetic load-testing
// processes from it against a desim.Simulation. It gives the "deterministic
// scenario" affordance spec.md's design notes call out as a typical
// implementer addition around a discrete-event simulation core, without
// adding any semantics to the core itself: every process it registers is an
// ordinary ProcessFunc built from nothing but Hold and a return.
package replay

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/PatatasDelPapa/desim"
)

// ProcessSpec describes one synthetic process: an optional delay (or
// schedule_now flag) for its first run, and a scripted sequence of Hold
// durations it yields, in order, before completing.
type ProcessSpec struct {
	Name         string   `toml:"name"`
	ScheduleNow  bool     `toml:"schedule_now"`
	InitialDelay string   `toml:"initial_delay"`
	Holds        []string `toml:"holds"`
}

// Scenario is the top-level decoded document: a flat list of processes.
type Scenario struct {
	Process []ProcessSpec `toml:"process"`
}

// Load decodes a Scenario from r.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("desim/replay: decode: %w", err)
	}
	return &s, nil
}

// LoadFile opens path and decodes a Scenario from it.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("desim/replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Apply registers one process per ProcessSpec in scenario against sim, and
// schedules each according to its InitialDelay/ScheduleNow fields. It
// returns the Keys in scenario order. A spec with neither InitialDelay nor
// ScheduleNow set is registered but never scheduled -- the caller is free to
// schedule it manually (or activate it from another process).
func Apply(sim *desim.Simulation[any], scenario *Scenario) ([]desim.Key, error) {
	keys := make([]desim.Key, 0, len(scenario.Process))
	for _, p := range scenario.Process {
		holds := make([]time.Duration, len(p.Holds))
		for i, raw := range p.Holds {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return nil, fmt.Errorf("desim/replay: process %q hold[%d] %q: %w", p.Name, i, raw, err)
			}
			holds[i] = d
		}

		key := sim.AddProcess(newScriptedProcess(holds))
		keys = append(keys, key)

		switch {
		case p.InitialDelay != "":
			d, err := time.ParseDuration(p.InitialDelay)
			if err != nil {
				return nil, fmt.Errorf("desim/replay: process %q initial_delay %q: %w", p.Name, p.InitialDelay, err)
			}
			sim.Schedule(d, key)
		case p.ScheduleNow:
			sim.ScheduleNow(key)
		}
	}
	return keys, nil
}

// newScriptedProcess builds a ProcessFunc that yields exactly one Hold per
// entry of holds, in order, then returns.
func newScriptedProcess(holds []time.Duration) desim.ProcessFunc[any] {
	return func(ctx context.Context, yield func(desim.Action) any) {
		for _, d := range holds {
			yield(desim.Hold(d))
		}
	}
}
