// Package trace renders a human-oriented, per-dispatch trace of a
// desim.Simulation run by decorating process bodies, reusing the same
// logiface/stumpy logging stack the core already depends on (see
// desim/logging.go) rather than introducing a second logging mechanism.
//
// A Simulation has no hook into "every dispatched Action" beyond what a
// process itself observes around its own yield points, so trace works by
// wrapping a ProcessFunc: Process returns a ProcessFunc that logs each
// yielded Action (and the process's eventual completion) under the
// process's given name, then delegates to the original body unmodified.
package trace

import (
	"context"

	"github.com/PatatasDelPapa/desim"
)

// Process wraps fn so that every Action it yields, and its eventual
// completion, is recorded against log under name. A nil log makes Process a
// transparent passthrough (no allocation beyond the wrapping closures),
// matching the core's own "logger is strictly opt-in" policy.
func Process[R any](name string, log desim.Logger, fn desim.ProcessFunc[R]) desim.ProcessFunc[R] {
	return func(ctx context.Context, yield func(desim.Action) R) {
		traced := yield
		if log != nil {
			traced = func(a desim.Action) R {
				log.Debug().
					Str("process", name).
					Str("action", a.Kind().String()).
					Log("trace")
				return yield(a)
			}
		}

		fn(ctx, traced)

		if log != nil {
			log.Info().Str("process", name).Log("trace complete")
		}
	}
}
