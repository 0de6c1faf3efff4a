package pomcp

import "math/rand/v2"

// rollout estimates the value of startState by simulating a uniformly-random policy
// for up to maximumDepth steps, accumulating discount^k · reward and stopping early on
// a terminal transition (spec §4.4, C8). legalActions is refreshed from the model
// after every step.
func rollout[S State[S], O comparable, D InfoState[D]](
	model Model[S, O, D],
	rng *rand.Rand,
	startState S,
	legalActions []Action,
	maximumDepth int,
	discount float32,
	rolloutDepthStats *Statistic,
) float64 {
	state := startState
	discountFactor := float32(1)
	var total float64
	steps := 0

	for steps < maximumDepth && len(legalActions) > 0 {
		action := legalActions[rng.IntN(len(legalActions))]
		result, _ := model.GenerateStep(state, action)
		total += float64(discountFactor) * result.Reward
		steps++
		state = result.NextState
		if result.IsTerminal {
			break
		}
		discountFactor *= discount
		legalActions = model.GetLegalActions(state)
	}

	rolloutDepthStats.Add(float64(steps))
	return total
}
