// Package beliefview renders a one-shot terminal snapshot of a planner's root belief:
// a particle histogram and per-action visit/value statistics, styled with lipgloss and
// sized to the attached terminal (or a safe default when stdout isn't a terminal).
package beliefview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// ParticleCount is one (state label, count) bucket of a belief histogram.
type ParticleCount struct {
	Label string
	Count int
}

// ActionStat is one row of the action-statistics table.
type ActionStat struct {
	Label      string
	VisitCount int
	MeanQ      float64
}

// Render returns a terminal-ready snapshot of title, a particle histogram, and a
// table of action statistics sorted by descending mean value.
func Render(title string, particles []ParticleCount, actions []ActionStat) string {
	width := terminalWidth()

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(renderHistogram(particles, width))
	b.WriteString("\n")
	b.WriteString(renderActionTable(actions))
	return b.String()
}

func terminalWidth() int {
	if w, _, err := term.GetSize(1); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func renderHistogram(particles []ParticleCount, width int) string {
	total := 0
	for _, p := range particles {
		total += p.Count
	}
	if total == 0 {
		return dimStyle.Render("(no particles)")
	}

	maxLabelLen := 0
	for _, p := range particles {
		if len(p.Label) > maxLabelLen {
			maxLabelLen = len(p.Label)
		}
	}
	barWidth := width - maxLabelLen - 10
	if barWidth < 1 {
		barWidth = 1
	}

	var b strings.Builder
	for _, p := range particles {
		frac := float64(p.Count) / float64(total)
		filled := int(frac * float64(barWidth))
		bar := barStyle.Render(strings.Repeat("#", filled))
		fmt.Fprintf(&b, "%-*s %s %s\n", maxLabelLen, p.Label, bar, dimStyle.Render(fmt.Sprintf("%d (%.1f%%)", p.Count, frac*100)))
	}
	return b.String()
}

func renderActionTable(actions []ActionStat) string {
	if len(actions) == 0 {
		return dimStyle.Render("(no action statistics)")
	}

	sorted := append([]ActionStat(nil), actions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MeanQ > sorted[j].MeanQ })

	var b strings.Builder
	b.WriteString(dimStyle.Render("action        visits      mean-q"))
	b.WriteString("\n")
	for _, a := range sorted {
		fmt.Fprintf(&b, "%-12s %7d %11.3f\n", a.Label, a.VisitCount, a.MeanQ)
	}
	return b.String()
}
