package pomcp

import "fmt"

// Statistic accumulates a scalar stream's running count, mean, min and max (spec
// §4.2, C2). It has no concurrency guarantees: it is only ever touched from the
// single goroutine running a planner's simulation batch.
type Statistic struct {
	name  string
	count int
	sum   float64
	min   float64
	max   float64
}

// NewStatistic creates an empty Statistic with the given display name.
func NewStatistic(name string) *Statistic {
	return &Statistic{name: name}
}

// Clear resets the accumulator back to empty, keeping its name.
func (s *Statistic) Clear() {
	name := s.name
	*s = Statistic{name: name}
}

// Add folds x into the running count/sum/min/max.
func (s *Statistic) Add(x float64) {
	if s.count == 0 {
		s.min, s.max = x, x
	} else if x < s.min {
		s.min = x
	} else if x > s.max {
		s.max = x
	}
	s.sum += x
	s.count++
}

// Count returns the number of values folded in so far.
func (s *Statistic) Count() int { return s.count }

// Mean returns the arithmetic mean of all folded-in values, or 0 if none were added.
func (s *Statistic) Mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

// Min returns the smallest value folded in so far.
func (s *Statistic) Min() float64 { return s.min }

// Max returns the largest value folded in so far.
func (s *Statistic) Max() float64 { return s.max }

// String renders a one-line human-readable summary, as used in the planner's
// performance log line.
func (s *Statistic) String() string {
	return fmt.Sprintf("%s: count=%d mean=%.4f min=%.4f max=%.4f", s.name, s.count, s.Mean(), s.min, s.max)
}
