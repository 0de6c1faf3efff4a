package pomcp

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// selectAction implements UCB1 action selection over node's action map (spec §4.3,
// C7). If greedy, each entry scores by mean_q alone; otherwise it scores by
// mean_q plus the UCB1 exploration bonus. An entry with visit_count = 0 has an
// undefined mean_q and is always scored +∞, so it dominates regardless of greedy
// (spec §3 invariant 2, §8 property 5). Ties are broken by lowest bin_number, which
// falls out of iterating legal actions in ascending order and only replacing the
// incumbent on a strictly greater score.
func selectAction[S State[S], O comparable, D InfoState[D]](ucb *ucbTable, node *BeliefNode[S, O, D], greedy bool) (Action, error) {
	legal := node.data.GenerateLegalActions()
	if len(legal) == 0 {
		return 0, errors.Wrapf(ErrNoLegalAction, "belief node at depth %d has no legal actions", node.depth)
	}
	sortedLegal := append([]Action(nil), legal...)
	slices.Sort(sortedLegal)

	for _, a := range sortedLegal {
		node.actions.entry(a) // ensure an entry exists for every legal action (spec §4.3)
	}

	total := node.actions.totalVisits
	logTotal := math32.Log(float32(max(total, 1)))

	var bestAction Action
	bestScore := math32.Inf(-1)
	for i, a := range sortedLegal {
		entry, _ := node.actions.get(a)
		var score float32
		switch {
		case entry.VisitCount == 0:
			score = math32.Inf(1)
		case greedy:
			score = float32(entry.MeanQ)
		default:
			score = float32(entry.MeanQ) + ucb.fastUCB(total, entry.VisitCount, logTotal)
		}
		if i == 0 || score > bestScore {
			bestScore = score
			bestAction = a
		}
	}
	return bestAction, nil
}
