package pomcp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/patrickemami/pomcp-go/internal/parameters"
)

func TestNewFromParamsOverridesOnlyGivenKeys(t *testing.T) {
	params := parameters.Params{
		"num_sims":                  "1000",
		"discount":                  "0.9",
		"action_selection_time_out": "2.5",
	}

	cfg, err := NewFromParams(params)
	require.NoError(t, err)

	require.Equal(t, 1000, cfg.NumSims)
	require.InDelta(t, 0.9, cfg.Discount, 1e-6)
	require.Equal(t, 2500*time.Millisecond, cfg.ActionSelectionTimeout)

	// Everything else falls back to DefaultConfig.
	def := DefaultConfig()
	require.Equal(t, def.NumStartStates, cfg.NumStartStates)
	require.Equal(t, def.MaximumDepth, cfg.MaximumDepth)

	// Consumed keys are popped.
	require.Empty(t, params)
}

func TestNewFromParamsRejectsBadValue(t *testing.T) {
	params := parameters.Params{"num_sims": "not-a-number"}
	_, err := NewFromParams(params)
	require.Error(t, err)
}
