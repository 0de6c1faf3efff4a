package pomcp

// BeliefTree owns a single current root and an allocator (arena) that exclusively
// owns all belief nodes (spec §3, C6).
type BeliefTree[S State[S], O comparable, D InfoState[D]] struct {
	// nodes is the arena; index == nodeID. A nil entry is a node that has been
	// pruned away.
	nodes []*BeliefNode[S, O, D]
	root  nodeID
}

func newBeliefTree[S State[S], O comparable, D InfoState[D]]() *BeliefTree[S, O, D] {
	return &BeliefTree[S, O, D]{}
}

// newRoot discards any existing tree and allocates a fresh, particle-less root node
// carrying data as its information state (spec §3 Lifecycle: "the tree is destroyed
// when a fresh episode begins").
func (t *BeliefTree[S, O, D]) newRoot(data D) *BeliefNode[S, O, D] {
	root := &BeliefNode[S, O, D]{
		id:      0,
		depth:   0,
		actions: newActionMap[S, O, D](),
		parent:  noNode,
		data:    data,
	}
	t.nodes = []*BeliefNode[S, O, D]{root}
	t.root = 0
	return root
}

// Root returns the tree's current root node.
func (t *BeliefTree[S, O, D]) Root() *BeliefNode[S, O, D] {
	return t.nodes[t.root]
}

func (t *BeliefTree[S, O, D]) node(id nodeID) *BeliefNode[S, O, D] {
	if id == noNode {
		return nil
	}
	return t.nodes[id]
}

// childOrCreate returns the belief node reached from parent via (action, obs),
// allocating a new node the first time this (action, obs) pair is encountered for
// parent (spec §3 Lifecycle). created reports whether a new node was just allocated —
// this is exactly the "first visit expands the node" signal the UCT loop uses to
// decide between recursing and rolling out (spec §4.5).
func (t *BeliefTree[S, O, D]) childOrCreate(parent *BeliefNode[S, O, D], action Action, obs O, data D) (child *BeliefNode[S, O, D], created bool) {
	entry := parent.actions.entry(action)
	if id, ok := entry.observations.get(obs); ok {
		return t.node(id), false
	}
	child = &BeliefNode[S, O, D]{
		id:                nodeID(len(t.nodes)),
		depth:             parent.depth + 1,
		actions:           newActionMap[S, O, D](),
		parent:            parent.id,
		incomingAction:    action,
		incomingObs:       obs,
		hasIncomingAction: true,
		data:              data,
	}
	t.nodes = append(t.nodes, child)
	entry.observations.set(obs, child.id)
	return child, true
}

// child looks up, without creating, the belief node reached from parent via
// (action, obs). Returns nil if that pair has never been seen.
func (t *BeliefTree[S, O, D]) child(parent *BeliefNode[S, O, D], action Action, obs O) *BeliefNode[S, O, D] {
	entry, ok := parent.actions.get(action)
	if !ok {
		return nil
	}
	id, ok := entry.observations.get(obs)
	if !ok {
		return nil
	}
	return t.node(id)
}

// pruneSiblings destroys every node reachable from the current root except the
// subtree rooted at keep, then reroots the tree at keep and clears keep's parent
// (spec §4.6). Destruction releases all state particles owned by pruned nodes, since
// nothing keeps a reference to them once their arena slot is cleared.
func (t *BeliefTree[S, O, D]) pruneSiblings(keep *BeliefNode[S, O, D]) {
	reachable := make(map[nodeID]bool, len(t.nodes))
	var mark func(id nodeID)
	mark = func(id nodeID) {
		if id == noNode || reachable[id] {
			return
		}
		reachable[id] = true
		node := t.node(id)
		for _, bin := range node.actions.sortedActions() {
			entry, _ := node.actions.get(bin)
			for childID := range entry.observations.children {
				mark(childID)
			}
		}
	}
	mark(keep.id)

	for id, node := range t.nodes {
		if node == nil || reachable[nodeID(id)] {
			continue
		}
		t.nodes[id] = nil
	}

	keep.parent = noNode
	keep.hasIncomingAction = false
	keep.depth = 0
	t.root = keep.id
}
