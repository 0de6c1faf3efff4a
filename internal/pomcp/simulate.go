package pomcp

import "time"

// uctSearch is the entry point of the UCT/POMCP simulation loop (spec §4.5, C9): it
// runs up to Config.NumSims simulations, each rooted at a particle sampled from the
// root's belief, bounded conjunctively by Config.ActionSelectionTimeout.
func (p *Planner[S, O, D]) uctSearch() {
	p.totalRewardStats.Clear()
	p.treeDepthStats.Clear()
	p.rolloutDepthStats.Clear()

	root := p.tree.Root()
	snapshot := root.data.Clone()

	// A zero timeout is bounded too: per spec §8 scenario S6, it means the deadline
	// has already elapsed, not "unbounded" — use Unbounded (a negative duration) for
	// that.
	timeBounded := p.config.ActionSelectionTimeout >= 0
	deadline := time.Now().Add(p.config.ActionSelectionTimeout)

	numSims := 0
	for ; numSims < p.config.NumSims; numSims++ {
		if timeBounded && time.Now().After(deadline) {
			break
		}

		p.model.Reset()
		root.data = snapshot.Clone()

		state := root.sampleParticle(p.rng)
		peakDepth := 0
		totalReward := p.simulateNode(state, root, 0, deadline, timeBounded, &peakDepth)

		p.totalRewardStats.Add(totalReward)
		p.treeDepthStats.Add(float64(peakDepth))
	}

	root.data = snapshot
	p.lastNumSims = numSims
}

// simulateNode performs one recursive descent step of a single UCT simulation (spec
// §4.5): pick an action via non-greedy UCB1, bail out at the time budget or the
// maximum_depth horizon, optionally reinvigorate the belief at depth 1, then hand off
// to stepNode.
func (p *Planner[S, O, D]) simulateNode(state S, node *BeliefNode[S, O, D], depth int, deadline time.Time, timeBounded bool, peakDepth *int) float64 {
	if timeBounded && time.Now().After(deadline) {
		return 0
	}

	action, err := selectAction[S, O, D](p.ucb, node, false)
	if err != nil {
		// NoLegalAction is a model bug, not a recoverable planning condition (spec
		// §7); there is nothing useful to back up, so contribute a neutral 0 and let
		// the caller's fatal-assertion policy decide how loud to be about it.
		logNoLegalAction(err)
		return 0
	}

	if depth > *peakDepth {
		*peakDepth = depth
	}
	if depth >= p.config.MaximumDepth {
		return 0
	}

	if depth == 1 && node.NumParticles() < p.config.MaxParticleCount {
		node.addParticle(state)
	}

	return p.stepNode(node, state, action, depth, deadline, timeBounded, peakDepth)
}

// stepNode takes one real (simulated) transition from state via action, expands the
// tree on first visit (rollout) or recurses on subsequent visits, and backs up the
// resulting Q estimate into node's action map (spec §4.5).
func (p *Planner[S, O, D]) stepNode(node *BeliefNode[S, O, D], state S, action Action, depth int, deadline time.Time, timeBounded bool, peakDepth *int) float64 {
	if timeBounded && time.Now().After(deadline) {
		return 0
	}

	result, _ := p.model.GenerateStep(state, action)

	var delayed float64
	if !result.IsTerminal {
		child, created := p.tree.childOrCreate(node, action, result.Observation, node.data.Clone())
		if created {
			// First visit to this (action, observation) pair: expand and estimate
			// its value with a rollout, rather than recursing into an empty node.
			legal := p.model.GetLegalActions(result.NextState)
			remainingDepth := p.config.MaximumDepth - depth - 1
			delayed = rollout[S, O, D](p.model, p.rng, result.NextState, legal, remainingDepth, p.config.Discount, p.rolloutDepthStats)
		} else {
			delayed = p.simulateNode(result.NextState, child, depth+1, deadline, timeBounded, peakDepth)
		}
	}

	q := (result.Reward + float64(p.config.Discount)*delayed) * float64(p.config.StepSize)
	node.actions.recordVisit(action, q)
	return q
}
