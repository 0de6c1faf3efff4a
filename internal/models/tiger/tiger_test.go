package tiger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/patrickemami/pomcp-go/internal/pomcp"
)

func TestListenNeverMovesTiger(t *testing.T) {
	m := New(1)
	state := State{Tiger: SideLeft}
	for i := 0; i < 50; i++ {
		result, ok := m.GenerateStep(state, ActionListen)
		require.True(t, ok)
		require.False(t, result.IsTerminal)
		require.Equal(t, listenReward, result.Reward)
		require.Equal(t, state, result.NextState)
	}
}

func TestOpeningCorrectDoorIsRewarded(t *testing.T) {
	m := New(2)
	state := State{Tiger: SideRight}
	result, ok := m.GenerateStep(state, ActionOpenLeft)
	require.True(t, ok)
	require.True(t, result.IsTerminal)
	require.Equal(t, rightDoorReward, result.Reward)

	result, ok = m.GenerateStep(state, ActionOpenRight)
	require.True(t, ok)
	require.True(t, result.IsTerminal)
	require.Equal(t, wrongDoorReward, result.Reward)
}

func TestGenerateStepRejectsUnknownAction(t *testing.T) {
	m := New(3)
	_, ok := m.GenerateStep(State{Tiger: SideLeft}, pomcp.Action(99))
	require.False(t, ok)
}

func TestListenObservationIsNoisy(t *testing.T) {
	m := New(4)
	state := State{Tiger: SideLeft}
	counts := map[Observation]int{}
	const trials = 2000
	for i := 0; i < trials; i++ {
		result, _ := m.GenerateStep(state, ActionListen)
		counts[result.Observation]++
	}
	// With accuracy 0.85 the correct observation should dominate, but the noisy one
	// must still occur given enough trials.
	require.Greater(t, counts[ObservationHearLeft], counts[ObservationHearRight])
	require.Greater(t, counts[ObservationHearRight], 0)
}

func TestGenerateParticlesFiltersByObservation(t *testing.T) {
	m := New(5)
	source := make([]State, 200)
	for i := range source {
		if i%2 == 0 {
			source[i] = State{Tiger: SideLeft}
		} else {
			source[i] = State{Tiger: SideRight}
		}
	}

	particles := m.GenerateParticles(nil, ActionListen, ObservationHearLeft, 50, source)
	require.LessOrEqual(t, len(particles), 50)
	require.NotEmpty(t, particles)
}

func TestGenerateParticlesUninformedReturnsRequestedCount(t *testing.T) {
	m := New(6)
	particles := m.GenerateParticlesUninformed(nil, ActionListen, ObservationHearLeft, 37)
	require.Len(t, particles, 37)
}

func TestInfoStateLegalActionsAlwaysAllThree(t *testing.T) {
	var info InfoState
	actions := info.GenerateLegalActions()
	require.ElementsMatch(t, []pomcp.Action{ActionListen, ActionOpenLeft, ActionOpenRight}, actions)
}

func TestSideStringRoundTrip(t *testing.T) {
	require.Equal(t, "left", SideLeft.String())
	require.Equal(t, "right", SideRight.String())
	v, err := SideString("right")
	require.NoError(t, err)
	require.Equal(t, SideRight, v)
	_, err = SideString("up")
	require.Error(t, err)
}

func TestObservationStringRoundTrip(t *testing.T) {
	require.Equal(t, "hear_left", ObservationHearLeft.String())
	require.Equal(t, "hear_right", ObservationHearRight.String())
	v, err := ObservationString("hear_right")
	require.NoError(t, err)
	require.Equal(t, ObservationHearRight, v)
}
