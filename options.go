package desim

import (
	"fmt"
	"time"
)

// simulationOptions holds configuration resolved from SimulationOption
// values, mirroring the teacher's loopOptions/LoopOption/resolveLoopOptions
// shape in options.go.
type simulationOptions struct {
	logger          simLogger
	initialCapacity int
	clockStart      time.Duration
}

// SimulationOption configures a Simulation at construction time.
type SimulationOption interface {
	applySimulation(*simulationOptions) error
}

type simulationOptionFunc func(*simulationOptions) error

func (f simulationOptionFunc) applySimulation(o *simulationOptions) error {
	return f(o)
}

// WithLogger installs a structured Logger (see logging.go) on the
// Simulation. The zero value used when this option is omitted is a disabled
// no-op logger, so logging remains strictly opt-in.
func WithLogger(logger Logger) SimulationOption {
	return simulationOptionFunc(func(o *simulationOptions) error {
		o.logger = wrapLogger(logger)
		return nil
	})
}

// WithInitialCapacity pre-sizes the Container's process slice and the
// Scheduler's heap backing array. It has no semantic effect; it exists
// purely to avoid reallocation churn when the number of processes is known
// up front. n must be non-negative.
func WithInitialCapacity(n int) SimulationOption {
	return simulationOptionFunc(func(o *simulationOptions) error {
		if n < 0 {
			return fmt.Errorf("desim: initial capacity must be non-negative, got %d", n)
		}
		o.initialCapacity = n
		return nil
	})
}

// WithClockStart starts the virtual clock at a non-zero offset, rather than
// zero. This has no bearing on wall-clock synchronization (spec's Non-goals
// explicitly exclude that); it is only useful for simulations that want
// their virtual timestamps to read as offsets from some fixed epoch. d must
// be non-negative, preserving the Scheduler's monotonicity invariant (I1)
// from the first Pop.
func WithClockStart(d time.Duration) SimulationOption {
	return simulationOptionFunc(func(o *simulationOptions) error {
		if d < 0 {
			return fmt.Errorf("desim: clock start must be non-negative, got %s", d)
		}
		o.clockStart = d
		return nil
	})
}

// resolveSimulationOptions applies every SimulationOption to a fresh
// simulationOptions, returning the first error encountered.
func resolveSimulationOptions(opts []SimulationOption) (*simulationOptions, error) {
	cfg := &simulationOptions{logger: noopLogger{}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applySimulation(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
