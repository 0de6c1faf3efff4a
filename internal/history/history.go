// Package history is a debug-only log of the real (non-simulated) steps a POMCP
// planner has taken. The planner appends one entry per Update that finds a belief node
// to advance to (before its particle refill, so a refill that then reports depletion
// still leaves its entry), and it is only ever used for reporting — the planner never
// reads from it.
package history

import (
	"fmt"
	"strings"
)

// Entry records one real step: the action taken, the observation received, the
// reward obtained, and the resulting state (spec.md §3 HistoryEntry).
type Entry[A any, S any, O any] struct {
	Action      A
	Observation O
	Reward      float64
	NextState   S
}

// Log is an append-only sequence of Entry.
type Log[A any, S any, O any] struct {
	entries []Entry[A, S, O]
}

// Append adds e to the end of the log.
func (l *Log[A, S, O]) Append(e Entry[A, S, O]) {
	l.entries = append(l.entries, e)
}

// Entries returns the log's entries in the order they were appended. Callers must
// not mutate the returned slice.
func (l *Log[A, S, O]) Entries() []Entry[A, S, O] {
	return l.entries
}

// Len reports how many entries have been appended.
func (l *Log[A, S, O]) Len() int { return len(l.entries) }

// String renders one line per entry, in order, for debugging.
func (l *Log[A, S, O]) String() string {
	var sb strings.Builder
	for i, e := range l.entries {
		fmt.Fprintf(&sb, "#%d: action=%v observation=%v reward=%.3f next_state=%v\n",
			i, e.Action, e.Observation, e.Reward, e.NextState)
	}
	return sb.String()
}
