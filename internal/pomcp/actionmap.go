package pomcp

import (
	"slices"

	"github.com/patrickemami/pomcp-go/internal/generics"
)

// ActionEntry is the per-action visit count and running mean Q for one action at one
// belief node (spec §3, C3). mean_q is the arithmetic mean of the visit_count scaled
// returns backed up through this entry, maintained by the incremental-mean update
// mean_q ← mean_q + (x − mean_q)/visit_count.
type ActionEntry[S State[S], O comparable, D InfoState[D]] struct {
	BinNumber    Action
	VisitCount   int
	MeanQ        float64
	observations *ObservationMap[S, O, D]
}

func newActionEntry[S State[S], O comparable, D InfoState[D]](bin Action) *ActionEntry[S, O, D] {
	return &ActionEntry[S, O, D]{
		BinNumber:    bin,
		observations: newObservationMap[S, O, D](),
	}
}

// update folds a newly backed-up return x into the entry's running mean (spec §3
// invariant).
func (e *ActionEntry[S, O, D]) update(x float64) {
	e.VisitCount++
	e.MeanQ += (x - e.MeanQ) / float64(e.VisitCount)
}

// ActionMap is the mapping bin_number → ActionEntry, populated lazily on first visit
// of each legal action, plus the running total of all entries' visit counts (spec §3,
// C3).
type ActionMap[S State[S], O comparable, D InfoState[D]] struct {
	entries     map[Action]*ActionEntry[S, O, D]
	totalVisits int
}

func newActionMap[S State[S], O comparable, D InfoState[D]]() *ActionMap[S, O, D] {
	return &ActionMap[S, O, D]{entries: make(map[Action]*ActionEntry[S, O, D])}
}

// entry returns a's entry, creating it (count 0, Q 0) the first time a is visited
// (spec §4.3).
func (m *ActionMap[S, O, D]) entry(a Action) *ActionEntry[S, O, D] {
	e, ok := m.entries[a]
	if !ok {
		e = newActionEntry[S, O, D](a)
		m.entries[a] = e
	}
	return e
}

// get returns a's entry without creating it.
func (m *ActionMap[S, O, D]) get(a Action) (*ActionEntry[S, O, D], bool) {
	e, ok := m.entries[a]
	return e, ok
}

// sortedActions returns the map's action keys in ascending order, reusing the
// teacher's generics helper for deterministic iteration (used for pruning; the
// selector sorts its own legal-actions slice directly).
func (m *ActionMap[S, O, D]) sortedActions() []Action {
	return slices.Collect(generics.SortedKeys(m.entries))
}

// recordVisit backs up x into a's entry and the map's total visit count (spec §4.5
// backup step).
func (m *ActionMap[S, O, D]) recordVisit(a Action, x float64) {
	e := m.entry(a)
	e.update(x)
	m.totalVisits++
}
