package pomcp

import "github.com/patrickemami/pomcp-go/internal/generics"

// ObservationMap is the mapping observation → child belief node for one action at one
// belief node (spec §3, C4). The child node is owned by the tree's arena; this map
// only holds a reference (its nodeID).
type ObservationMap[S State[S], O comparable, D InfoState[D]] struct {
	children map[O]nodeID
}

func newObservationMap[S State[S], O comparable, D InfoState[D]]() *ObservationMap[S, O, D] {
	return &ObservationMap[S, O, D]{children: make(map[O]nodeID)}
}

// get returns the child node id reached by observation o, if the (action, o) pair has
// been seen before.
func (m *ObservationMap[S, O, D]) get(o O) (nodeID, bool) {
	id, ok := m.children[o]
	return id, ok
}

// set records that observation o leads to child node id.
func (m *ObservationMap[S, O, D]) set(o O, id nodeID) {
	m.children[o] = id
}

// len reports how many distinct observations have been recorded for this action.
func (m *ObservationMap[S, O, D]) len() int { return len(m.children) }

// anyChild returns an arbitrary recorded child node id, used by the
// observation-mismatch salvage logic (spec §4.7). Callers must check len() > 0 first.
func (m *ObservationMap[S, O, D]) anyChild() nodeID {
	return generics.MapAnyValue(m.children)
}
