package pomcp

import (
	"time"

	"github.com/patrickemami/pomcp-go/internal/parameters"
)

// Config holds the planner's hyperparameters (spec §6 Configuration table).
type Config struct {
	// NumStartStates is the initial particle count at root.
	NumStartStates int
	// MinParticleCount is the lower bound before uninformed refill is attempted.
	MinParticleCount int
	// MaxParticleCount is the upper bound for refill and depth-1 reinvigoration.
	MaxParticleCount int
	// NumSims is the number of simulations per SelectAction call.
	NumSims int
	// MaximumDepth is the hard horizon for both tree descent and rollouts.
	MaximumDepth int
	// ActionSelectionTimeout is the wall-clock budget per SelectAction call. Zero
	// means the deadline has already elapsed: SelectAction returns almost
	// immediately, backing up close to zero visits, regardless of NumSims (spec §8
	// scenario S6). Use Unbounded to disable the wall-clock budget entirely and let
	// NumSims be the only stopping condition.
	ActionSelectionTimeout time.Duration
	// UCBCoefficient is c in the UCB1 formula.
	UCBCoefficient float32
	// Discount is γ, applied per step inside rollouts and backups.
	Discount float32
	// StepSize is the multiplicative scaling applied to all backed-up Q values.
	StepSize float32
}

// Unbounded, when set as Config.ActionSelectionTimeout, disables the wall-clock
// budget for SelectAction, leaving NumSims as the sole stopping condition. Zero is
// deliberately not used for this: spec §8 scenario S6 requires that a literal zero
// timeout make SelectAction return with essentially no simulations run.
const Unbounded time.Duration = -1

// DefaultConfig returns reasonable defaults, in the same spirit as the magnitudes
// used by original_source/src/POMDP/solvers/MCTS.py's sys_cfg and by the published
// POMCP parameterization (Silver & Veness, 2010).
func DefaultConfig() Config {
	return Config{
		NumStartStates:         1000,
		MinParticleCount:       100,
		MaxParticleCount:       1000,
		NumSims:                500,
		MaximumDepth:           50,
		ActionSelectionTimeout: time.Second,
		UCBCoefficient:         1.0,
		Discount:               0.95,
		StepSize:               1.0,
	}
}

// NewFromParams builds a Config from string-keyed parameters (e.g. a CLI flag like
// "num_sims=500,discount=0.95"), mirroring the teacher's
// internal/searchers/mcts.NewFromParams / internal/parameters.PopParamOr idiom:
// every recognized key is consumed (popped) from params, defaults apply to anything
// left unset.
func NewFromParams(params parameters.Params) (Config, error) {
	cfg := DefaultConfig()
	var err error

	if cfg.NumStartStates, err = parameters.PopParamOr(params, "num_start_states", cfg.NumStartStates); err != nil {
		return cfg, err
	}
	if cfg.MinParticleCount, err = parameters.PopParamOr(params, "min_particle_count", cfg.MinParticleCount); err != nil {
		return cfg, err
	}
	if cfg.MaxParticleCount, err = parameters.PopParamOr(params, "max_particle_count", cfg.MaxParticleCount); err != nil {
		return cfg, err
	}
	if cfg.NumSims, err = parameters.PopParamOr(params, "num_sims", cfg.NumSims); err != nil {
		return cfg, err
	}
	if cfg.MaximumDepth, err = parameters.PopParamOr(params, "maximum_depth", cfg.MaximumDepth); err != nil {
		return cfg, err
	}

	timeoutSeconds := cfg.ActionSelectionTimeout.Seconds()
	if timeoutSeconds, err = parameters.PopParamOr(params, "action_selection_time_out", timeoutSeconds); err != nil {
		return cfg, err
	}
	cfg.ActionSelectionTimeout = time.Duration(timeoutSeconds * float64(time.Second))

	if cfg.UCBCoefficient, err = parameters.PopParamOr(params, "ucb_coefficient", cfg.UCBCoefficient); err != nil {
		return cfg, err
	}
	if cfg.Discount, err = parameters.PopParamOr(params, "discount", cfg.Discount); err != nil {
		return cfg, err
	}
	if cfg.StepSize, err = parameters.PopParamOr(params, "step_size", cfg.StepSize); err != nil {
		return cfg, err
	}
	return cfg, nil
}
