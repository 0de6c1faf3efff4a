package pomcp

import "github.com/chewxy/math32"

const (
	// ucbTableN is N_MAX, the table's dimension over total visit counts.
	ucbTableN = 10000
	// ucbTableSmallN is n_MAX, the table's dimension over per-action visit counts.
	ucbTableSmallN = 100
)

// ucbTable is a precomputed exploration-bonus lookup for small visit counts (spec
// §4.1, C1). Cell [N][n] holds c·√(log(N+1)/n) for n ≥ 1, and +∞ for n = 0.
type ucbTable struct {
	coefficient float32
	table       [ucbTableN][ucbTableSmallN]float32
}

// newUCBTable fills the table once at construction for the given UCB1 exploration
// coefficient c.
func newUCBTable(coefficient float32) *ucbTable {
	t := &ucbTable{coefficient: coefficient}
	for N := 0; N < ucbTableN; N++ {
		logNPlus1 := math32.Log(float32(N + 1))
		for n := 0; n < ucbTableSmallN; n++ {
			if n == 0 {
				t.table[N][n] = math32.Inf(1)
				continue
			}
			t.table[N][n] = coefficient * math32.Sqrt(logNPlus1/float32(n))
		}
	}
	return t
}

// fastUCB returns the exploration bonus for a total visit count N and a per-action
// visit count n, given the already-computed logN = log(max(N,1)). Falls back to
// computing the formula directly when N or n falls outside the precomputed range.
func (t *ucbTable) fastUCB(totalVisits, visitCount int, logTotal float32) float32 {
	if totalVisits >= 0 && totalVisits < ucbTableN && visitCount >= 0 && visitCount < ucbTableSmallN {
		return t.table[totalVisits][visitCount]
	}
	if visitCount == 0 {
		return math32.Inf(1)
	}
	return t.coefficient * math32.Sqrt(logTotal/float32(visitCount))
}
