package pomcp

import "github.com/pkg/errors"

// ErrNoLegalAction is returned when a belief node's information state reports no
// legal actions at all. Per spec, this is a programmer/model error: it is fatal, not
// recoverable, and should never occur against a correctly implemented Model.
var ErrNoLegalAction = errors.New("pomcp: no legal action available at belief node")

// The remaining error kinds named by the design (ObservationMismatch,
// ParticleDepletion, TimeBudgetExhausted) are not surfaced as Go errors: they are
// recoverable conditions signalled by return values and logged with klog, per the
// propagation policy of spec.md §7.
//
//   - ObservationMismatch is handled locally by the salvage logic in Planner.Update
//     and logged via klog.Errorf.
//   - ParticleDepletion is reported to the caller as Planner.Update's boolean return.
//   - TimeBudgetExhausted causes the current simulation to short-circuit with a
//     return value of 0; the outer batch loop simply exits early.
