// logging.go wires structured logging into the simulation driver using the
// author's own logiface framework, rather than a bespoke interface: unlike
// the teacher's eventloop package (which defines its own Logger/LogEntry
// types to avoid a hard dependency), this module is happy to depend directly
// on logiface, since it is already part of the examples this module is
// grounded on.

package desim

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type used throughout this package: a
// logiface.Logger bound to stumpy's JSON event implementation.
type Logger = *logiface.Logger[*stumpy.Event]

// NewLogger builds a Logger that writes newline-delimited JSON records to w
// at or above level. Pass logiface.LevelDisabled to obtain a logger that
// never writes (equivalent to the zero-value default used when
// WithLogger is omitted).
func NewLogger(w io.Writer, level logiface.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	return stumpy.L.New(
		stumpy.L.WithLevel(level),
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
	)
}

// noopLogger satisfies the small subset of Logger's surface this package
// relies on without constructing a real logiface.Logger, so Simulation's
// zero-configuration path never touches an I/O writer at all.
type noopLogger struct{}

func (noopLogger) logSchedule(Key, bool) {}
func (noopLogger) logPop(EventEntry)     {}
func (noopLogger) logAction(Key, Action) {}
func (noopLogger) logComplete(Key)       {}
func (noopLogger) logViolation(ProtocolViolation) {}

// simLogger is the internal adapter Simulation actually holds: either a real
// Logger (wrapped), or noopLogger. It keeps simulation.go free of logiface
// generic-instantiation noise.
type simLogger interface {
	logSchedule(key Key, now bool)
	logPop(entry EventEntry)
	logAction(key Key, action Action)
	logComplete(key Key)
	logViolation(cause ProtocolViolation)
}

// loggerAdapter wraps a real Logger to satisfy simLogger.
type loggerAdapter struct {
	log Logger
}

func wrapLogger(l Logger) simLogger {
	if l == nil {
		return noopLogger{}
	}
	return loggerAdapter{log: l}
}

func (a loggerAdapter) logSchedule(key Key, now bool) {
	a.log.Debug().Str("key", key.String()).Bool("now", now).Log("schedule")
}

func (a loggerAdapter) logPop(entry EventEntry) {
	a.log.Debug().Str("key", entry.Key.String()).Int64("time_ns", int64(entry.Time)).Log("pop")
}

func (a loggerAdapter) logAction(key Key, action Action) {
	a.log.Debug().Str("key", key.String()).Str("action", action.Kind().String()).Log("dispatch")
}

func (a loggerAdapter) logComplete(key Key) {
	a.log.Info().Str("key", key.String()).Log("complete")
}

func (a loggerAdapter) logViolation(cause ProtocolViolation) {
	a.log.Err().Str("key", cause.Key().String()).Str("reason", cause.Error()).Log("protocol violation")
}
