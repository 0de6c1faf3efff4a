package pomcp

import "math/rand/v2"

// banditState is a trivial stateless particle: the bandit problem used across this
// package's tests has no hidden state to track, only which arm was pulled.
type banditState struct{}

func (banditState) Clone() banditState { return banditState{} }
func (banditState) String() string     { return "bandit" }

// banditObs is the bandit's single, uninformative observation.
type banditObs int

const banditNoObs banditObs = 0

// banditInfoState carries the fixed legal-action set; the bandit never changes it.
type banditInfoState struct {
	legalActions []Action
}

func (d banditInfoState) Clone() banditInfoState { return d }

func (d banditInfoState) GenerateLegalActions() []Action {
	return d.legalActions
}

// banditModel is a stateless multi-armed bandit: pulling arm a always returns
// meanReward[a], never terminates, and every particle is interchangeable.
type banditModel struct {
	meanRewards []float64
	rng         *rand.Rand
	// informedParticleCap, when non-zero, bounds how many informed particles
	// GenerateParticles hands back regardless of how many the caller asked for —
	// used to reproduce spec.md §8 scenario S5's "model returns exactly 50 informed
	// particles" setup.
	informedParticleCap int
}

func newBanditModel(meanRewards []float64, seed uint64) *banditModel {
	return &banditModel{
		meanRewards: meanRewards,
		rng:         rand.New(rand.NewPCG(seed, seed)),
	}
}

func (m *banditModel) legalActions() []Action {
	actions := make([]Action, len(m.meanRewards))
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

func (m *banditModel) InitialInfoState() banditInfoState {
	return banditInfoState{legalActions: m.legalActions()}
}

func (m *banditModel) SampleInitState() banditState { return banditState{} }

func (m *banditModel) GetLegalActions(banditState) []Action { return m.legalActions() }

func (m *banditModel) GenerateStep(state banditState, action Action) (StepResult[banditState, banditObs], bool) {
	if int(action) < 0 || int(action) >= len(m.meanRewards) {
		return StepResult[banditState, banditObs]{}, false
	}
	return StepResult[banditState, banditObs]{
		Action:      action,
		Observation: banditNoObs,
		Reward:      m.meanRewards[action],
		NextState:   state,
		IsTerminal:  false,
	}, true
}

func (m *banditModel) Reset() {}

func (m *banditModel) Update(StepResult[banditState, banditObs]) {}

func (m *banditModel) GenerateParticles(parent *BeliefNode[banditState, banditObs, banditInfoState], action Action, obs banditObs, n int, sourceParticles []banditState) []banditState {
	if m.informedParticleCap > 0 && n > m.informedParticleCap {
		n = m.informedParticleCap
	}
	particles := make([]banditState, n)
	return particles
}

func (m *banditModel) GenerateParticlesUninformed(parent *BeliefNode[banditState, banditObs, banditInfoState], action Action, obs banditObs, n int) []banditState {
	particles := make([]banditState, n)
	return particles
}

// bernoulliBanditModel is a stateless bandit whose arms pay out 1 with the given
// probability and 0 otherwise, for spec.md §8 scenario S2's stochastic two-arm
// bandit — as opposed to banditModel's deterministic mean-reward arms, which S1's
// exact worked numbers depend on staying noise-free.
type bernoulliBanditModel struct {
	probabilities []float64
	rng           *rand.Rand
}

func newBernoulliBanditModel(probabilities []float64, seed uint64) *bernoulliBanditModel {
	return &bernoulliBanditModel{
		probabilities: probabilities,
		rng:           rand.New(rand.NewPCG(seed, seed)),
	}
}

func (m *bernoulliBanditModel) legalActions() []Action {
	actions := make([]Action, len(m.probabilities))
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

func (m *bernoulliBanditModel) InitialInfoState() banditInfoState {
	return banditInfoState{legalActions: m.legalActions()}
}

func (m *bernoulliBanditModel) SampleInitState() banditState { return banditState{} }

func (m *bernoulliBanditModel) GetLegalActions(banditState) []Action { return m.legalActions() }

func (m *bernoulliBanditModel) GenerateStep(state banditState, action Action) (StepResult[banditState, banditObs], bool) {
	if int(action) < 0 || int(action) >= len(m.probabilities) {
		return StepResult[banditState, banditObs]{}, false
	}
	reward := 0.0
	if m.rng.Float64() < m.probabilities[action] {
		reward = 1
	}
	return StepResult[banditState, banditObs]{
		Action:      action,
		Observation: banditNoObs,
		Reward:      reward,
		NextState:   state,
		IsTerminal:  false,
	}, true
}

func (m *bernoulliBanditModel) Reset() {}

func (m *bernoulliBanditModel) Update(StepResult[banditState, banditObs]) {}

func (m *bernoulliBanditModel) GenerateParticles(parent *BeliefNode[banditState, banditObs, banditInfoState], action Action, obs banditObs, n int, sourceParticles []banditState) []banditState {
	return make([]banditState, n)
}

func (m *bernoulliBanditModel) GenerateParticlesUninformed(parent *BeliefNode[banditState, banditObs, banditInfoState], action Action, obs banditObs, n int) []banditState {
	return make([]banditState, n)
}
