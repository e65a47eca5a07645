package errutil

import (
	"github.com/cwbudde/lispgo/internal/runtime"
	"github.com/pkg/errors"
)

// WrapHost wraps a lower-level Go error (a failed os.ReadFile inside
// slurp) with msg and raises the wrapped text ("msg: cause") as a Thrown
// Str the way every other interpreter-raised error is carried. The
// returned error holds only that Str, not the Go cause chain.
func WrapHost(cause error, msg string) error {
	wrapped := errors.Wrap(cause, msg)
	return runtime.Throw(runtime.Str(wrapped.Error()))
}
