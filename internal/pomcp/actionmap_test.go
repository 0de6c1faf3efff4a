package pomcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionEntryIncrementalMeanMatchesBatchMean(t *testing.T) {
	entry := newActionEntry[banditState, banditObs, banditInfoState](0)
	xs := []float64{4, 8, 15, 16, 23, 42}

	var sum float64
	for _, x := range xs {
		entry.update(x)
		sum += x
	}

	require.Equal(t, len(xs), entry.VisitCount)
	require.InDelta(t, sum/float64(len(xs)), entry.MeanQ, 1e-9)
}

func TestActionMapRecordVisitTracksTotalVisits(t *testing.T) {
	m := newActionMap[banditState, banditObs, banditInfoState]()
	m.recordVisit(0, 1.0)
	m.recordVisit(1, 2.0)
	m.recordVisit(0, 3.0)

	require.Equal(t, 3, m.totalVisits)
	entry, ok := m.get(0)
	require.True(t, ok)
	require.Equal(t, 2, entry.VisitCount)
	require.InDelta(t, 2.0, entry.MeanQ, 1e-9)
}
