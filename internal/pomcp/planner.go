package pomcp

import (
	"math/rand/v2"

	"github.com/patrickemami/pomcp-go/internal/history"
	"k8s.io/klog/v2"
)

// Planner is the top-level POMCP planner (spec §6 Exposed operations): it owns the
// belief tree, the model, and the RNG, and exposes SelectAction, Update and Reset.
type Planner[S State[S], O comparable, D InfoState[D]] struct {
	config Config
	model  Model[S, O, D]
	tree   *BeliefTree[S, O, D]
	ucb    *ucbTable
	rng    *rand.Rand

	totalRewardStats  *Statistic
	treeDepthStats    *Statistic
	rolloutDepthStats *Statistic
	lastNumSims       int

	// History is the debug log of real steps taken so far (spec §3 HistoryEntry);
	// it is never read by the planner itself.
	History *history.Log[Action, S, O]
}

// New creates a Planner for model with the given Config and RNG seed — the RNG is a
// single explicit stream threaded through rollouts and particle sampling, never the
// global math/rand stream (spec §5, §9 RNG-ownership note) — then calls Reset to
// populate the root belief.
func New[S State[S], O comparable, D InfoState[D]](model Model[S, O, D], config Config, seed uint64) *Planner[S, O, D] {
	p := &Planner[S, O, D]{
		config:            config,
		model:             model,
		tree:              newBeliefTree[S, O, D](),
		ucb:               newUCBTable(config.UCBCoefficient),
		rng:               rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		totalRewardStats:  NewStatistic("Total Reward"),
		treeDepthStats:    NewStatistic("Tree Depth"),
		rolloutDepthStats: NewStatistic("Rollout Depth"),
		History:           &history.Log[Action, S, O]{},
	}
	p.Reset()
	return p
}

// Reset reinitializes the root with fresh particles drawn from the model's
// initial-state distribution, discarding any existing tree (spec §6 Reset operation).
func (p *Planner[S, O, D]) Reset() {
	root := p.tree.newRoot(p.model.InitialInfoState())
	for i := 0; i < p.config.NumStartStates; i++ {
		root.addParticle(p.model.SampleInitState())
	}
}

// Root returns the planner's current root belief node, mainly for diagnostics and UI
// (e.g. rendering a particle histogram).
func (p *Planner[S, O, D]) Root() *BeliefNode[S, O, D] {
	return p.tree.Root()
}

// Stats returns the statistics collected by the most recent SelectAction call:
// total-reward, tree-depth and rollout-depth, plus the number of simulations actually
// run (which may be less than Config.NumSims if the time budget was exhausted first).
func (p *Planner[S, O, D]) Stats() (totalReward, treeDepth, rolloutDepth *Statistic, numSims int) {
	return p.totalRewardStats, p.treeDepthStats, p.rolloutDepthStats, p.lastNumSims
}

// SelectAction runs the UCT/POMCP simulation loop rooted at the current belief, then
// greedily returns the best action for the root (spec §4.5 steps 1–3, §2 dataflow).
func (p *Planner[S, O, D]) SelectAction() (Action, error) {
	p.uctSearch()

	if klog.V(1).Enabled() {
		klog.Infof("pomcp select_action: %d/%d simulations — %s — %s — %s",
			p.lastNumSims, p.config.NumSims, p.totalRewardStats, p.treeDepthStats, p.rolloutDepthStats)
	}

	return selectAction[S, O, D](p.ucb, p.tree.Root(), true)
}

// Update consumes a real (non-simulated) step result, advances the root to the belief
// reached by (action, observation), refilling particles as needed, and returns true
// if the belief became unrecoverably depleted and the caller should replan from
// scratch (spec §4.7, §6 Exposed operations).
func (p *Planner[S, O, D]) Update(result StepResult[S, O]) (depleted bool) {
	p.model.Update(result)

	root := p.tree.Root()
	child := p.tree.child(root, result.Action, result.Observation)

	if child == nil {
		entry, hasActionNode := root.actions.get(result.Action)
		if !hasActionNode || entry.observations.len() == 0 {
			klog.Errorf("pomcp update: action %v has no action node at root; cannot salvage, reporting belief depletion", result.Action)
			return true
		}
		// Observation-mismatch salvage (spec §4.7 step 3): the real environment
		// produced an observation planning never saw. Grab any sibling belief node
		// instead. This is explicitly noisy — it degrades belief accuracy.
		child = p.tree.node(entry.observations.anyChild())
		klog.Errorf("pomcp update: observation %v never seen for action %v at root; salvaging a sibling belief node, uncertainty introduced", result.Observation, result.Action)
	}

	p.History.Append(history.Entry[Action, S, O]{
		Action:      result.Action,
		Observation: result.Observation,
		Reward:      result.Reward,
		NextState:   result.NextState,
	})

	if child.NumParticles() < p.config.MaxParticleCount {
		need := p.config.MaxParticleCount - child.NumParticles()
		informed := p.model.GenerateParticles(root, result.Action, result.Observation, need, root.particles)
		for _, s := range informed {
			child.addParticle(s)
		}
		if len(informed) == 0 {
			uninformed := p.model.GenerateParticlesUninformed(root, result.Action, result.Observation, p.config.MinParticleCount)
			for _, s := range uninformed {
				child.addParticle(s)
			}
		}
	}

	if child.NumParticles() == 0 {
		klog.Errorf("pomcp update: particle refill failed after action %v / observation %v; reporting belief depletion", result.Action, result.Observation)
		return true
	}

	p.tree.pruneSiblings(child)
	return false
}

func logNoLegalAction(err error) {
	klog.Errorf("pomcp: %+v", err)
}
