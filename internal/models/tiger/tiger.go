// Package tiger implements the classic "Tiger problem" POMDP (Kaelbling, Littman &
// Cassandra, 1998) as a pomcp.Model, used as the demo/benchmark domain for
// cmd/pomcp-tiger.
//
// There are two doors, one hiding a tiger and the other a reward. The agent can
// Listen (pay a small cost for a noisy observation of which door hides the tiger),
// or open a door (ending the episode, for a large penalty or reward). Listening never
// changes which door hides the tiger.
package tiger

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/patrickemami/pomcp-go/internal/pomcp"
)

//go:generate go tool enumer -type=Side,Observation -trimprefix Side,Observation -json -transform snake

// Side identifies which door hides the tiger.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Observation is the noisy signal received after listening.
type Observation int

const (
	ObservationHearLeft Observation = iota
	ObservationHearRight
)

// Action constants for the Tiger problem. These are plain pomcp.Action values; since
// pomcp.Action is declared in another package its methods can't be extended here, so
// ActionName below plays the role a generated Stringer would for a local type.
const (
	ActionListen    pomcp.Action = 0
	ActionOpenLeft  pomcp.Action = 1
	ActionOpenRight pomcp.Action = 2
)

// ActionName returns a human-readable name for a Tiger action, or "unknown" for any
// other value.
func ActionName(a pomcp.Action) string {
	switch a {
	case ActionListen:
		return "listen"
	case ActionOpenLeft:
		return "open_left"
	case ActionOpenRight:
		return "open_right"
	default:
		return "unknown"
	}
}

const (
	listenAccuracy  = 0.85
	listenReward    = -1.0
	wrongDoorReward = -100.0
	rightDoorReward = 10.0
)

// State is a pomcp.State[State] wrapping which door currently hides the tiger.
type State struct {
	Tiger Side
}

func (s State) Clone() State { return s }

func (s State) String() string {
	if s.Tiger == SideLeft {
		return "tiger_left"
	}
	return "tiger_right"
}

// InfoState is the planner-visible information state. The Tiger problem's legal
// action set never depends on history, so InfoState carries no data of its own.
type InfoState struct{}

func (InfoState) Clone() InfoState { return InfoState{} }

func (InfoState) GenerateLegalActions() []pomcp.Action {
	return []pomcp.Action{ActionListen, ActionOpenLeft, ActionOpenRight}
}

// Model implements pomcp.Model[State, Observation, InfoState].
type Model struct {
	rng *rand.Rand
}

// New creates a Tiger Model with its own RNG stream, independent of the planner's.
func New(seed uint64) *Model {
	return &Model{rng: rand.New(rand.NewPCG(seed, seed^0xD1B54A32D192ED03))}
}

func (m *Model) InitialInfoState() InfoState { return InfoState{} }

func (m *Model) SampleInitState() State {
	if m.rng.Float64() < 0.5 {
		return State{Tiger: SideLeft}
	}
	return State{Tiger: SideRight}
}

func (m *Model) GetLegalActions(State) []pomcp.Action {
	return []pomcp.Action{ActionListen, ActionOpenLeft, ActionOpenRight}
}

// GenerateStep implements the Tiger transition/observation/reward model. Listening
// leaves the tiger in place and returns a noisy observation; opening a door ends the
// episode. Episodes are logically reset by the caller via Update/Reset, so the
// returned NextState after opening a door is simply a fresh uniform draw.
func (m *Model) GenerateStep(state State, action pomcp.Action) (pomcp.StepResult[State, Observation], bool) {
	switch action {
	case ActionListen:
		obs := ObservationHearLeft
		correct := state.Tiger == SideLeft
		heard := m.rng.Float64() < listenAccuracy
		if heard != correct {
			obs = ObservationHearRight
		}
		return pomcp.StepResult[State, Observation]{
			Action:      action,
			Observation: obs,
			Reward:      listenReward,
			NextState:   state,
			IsTerminal:  false,
		}, true

	case ActionOpenLeft, ActionOpenRight:
		opened := SideLeft
		if action == ActionOpenRight {
			opened = SideRight
		}
		reward := rightDoorReward
		if opened == state.Tiger {
			reward = wrongDoorReward
		}
		return pomcp.StepResult[State, Observation]{
			Action:      action,
			Observation: ObservationHearLeft,
			Reward:      reward,
			NextState:   m.SampleInitState(),
			IsTerminal:  true,
		}, true

	default:
		return pomcp.StepResult[State, Observation]{}, false
	}
}

// Reset is a no-op: the Tiger model carries no per-simulation mutable state beyond its
// RNG, which is intentionally shared and advanced across simulations.
func (m *Model) Reset() {}

// Update is a no-op: the real environment's transition already happened by the time
// the planner calls Update; Tiger has no internal world state to resynchronize.
func (m *Model) Update(pomcp.StepResult[State, Observation]) {}

// GenerateParticles reweights sourceParticles by rejection sampling: replay action
// from each source particle and keep the ones whose simulated observation matches obs,
// looping until n particles are accepted or the attempt budget is exhausted (spec
// §6.2 particle filter behavior).
func (m *Model) GenerateParticles(parent *pomcp.BeliefNode[State, Observation, InfoState], action pomcp.Action, obs Observation, n int, sourceParticles []State) []State {
	if n <= 0 || len(sourceParticles) == 0 {
		return nil
	}

	particles := make([]State, 0, n)
	const maxAttempts = 50
	for attempt := 0; attempt < maxAttempts && len(particles) < n; attempt++ {
		for _, src := range sourceParticles {
			if len(particles) >= n {
				break
			}
			result, _ := m.GenerateStep(src, action)
			if result.Observation == obs {
				particles = append(particles, result.NextState)
			}
		}
	}
	return particles
}

// GenerateParticlesUninformed draws n particles from the uniform prior, independent of
// action and obs, fanning the work out across goroutines via errgroup — this is the
// one place in the Tiger model concurrency is used, since it's pure sampling at the
// model boundary rather than inside the planner's single-threaded core (spec §5.1).
func (m *Model) GenerateParticlesUninformed(parent *pomcp.BeliefNode[State, Observation, InfoState], action pomcp.Action, obs Observation, n int) []State {
	if n <= 0 {
		return nil
	}

	const workers = 4
	chunks := chunkCounts(n, workers)
	results := make([][]State, len(chunks))

	// Seeds are drawn from m.rng up front, in the caller's goroutine: math/rand/v2's
	// Rand is not safe for concurrent use, so none of the spawned workers may touch it.
	seeds := make([]uint64, len(chunks))
	for i := range seeds {
		seeds[i] = m.rng.Uint64()
	}

	var g errgroup.Group
	for i, count := range chunks {
		i, count := i, count
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seeds[i], uint64(i)))
			chunk := make([]State, count)
			for j := range chunk {
				if rng.Float64() < 0.5 {
					chunk[j] = State{Tiger: SideLeft}
				} else {
					chunk[j] = State{Tiger: SideRight}
				}
			}
			results[i] = chunk
			return nil
		})
	}
	_ = g.Wait()

	particles := make([]State, 0, n)
	for _, chunk := range results {
		particles = append(particles, chunk...)
	}
	return particles
}

func chunkCounts(n, workers int) []int {
	counts := make([]int, workers)
	base := n / workers
	rem := n % workers
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
