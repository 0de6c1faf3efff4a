package pomcp

import "math/rand/v2"

// nodeID is an arena-stable index identifying a BeliefNode. Parent back-references
// are stored as ids, never as owning pointers — children own nothing of their parent,
// and a node's true owner is the tree's arena (spec §9's cyclic-parent-link design
// note).
type nodeID int

// noNode is the nodeID used for "no parent" (the root) and other absent references.
const noNode nodeID = -1

// BeliefNode is one node of the belief tree: a particle-filter belief (an unweighted
// multiset of states), an action map, and a weak back-reference to its parent (spec
// §3, C5).
type BeliefNode[S State[S], O comparable, D InfoState[D]] struct {
	id nodeID
	// depth is the node's distance from the root at the time it was created. It is
	// informational only: prune_siblings reroots the tree without renumbering
	// surviving descendants, so depth should not be relied on as an invariant across
	// root advances.
	depth int

	particles []S
	actions   *ActionMap[S, O, D]

	parent            nodeID
	incomingAction    Action
	incomingObs       O
	hasIncomingAction bool // false only for the current root

	data D
}

// NumParticles reports the size of the node's belief.
func (n *BeliefNode[S, O, D]) NumParticles() int { return len(n.particles) }

// Particles returns the node's particle multiset. Callers must not mutate the
// returned slice; it is owned by the node.
func (n *BeliefNode[S, O, D]) Particles() []S { return n.particles }

// sampleParticle draws one particle uniformly at random, with replacement, from the
// node's belief (spec §4.5 step c).
func (n *BeliefNode[S, O, D]) sampleParticle(rng *rand.Rand) S {
	return n.particles[rng.IntN(len(n.particles))]
}

// addParticle appends a state to the node's belief — used both for progressive
// reinvigoration at shallow depth during UCT (spec §4.5 step d) and for particle
// refill during root advance (spec §4.7 step 5).
func (n *BeliefNode[S, O, D]) addParticle(s S) {
	n.particles = append(n.particles, s)
}

// Data returns the node's current information-state snapshot.
func (n *BeliefNode[S, O, D]) Data() D { return n.data }
