// Package ranking implements the strict total order over teams
// (spec.md §4.1) that both FLUSH/SCROLL's full recompute and SCROLL's
// incremental bubble-up rely on.
package ranking

import (
	"sort"

	"github.com/opencontest/icpcboard/internal/boarddomain"
)

// Outranks reports whether team a ranks strictly above team b under
// the cascade in spec.md §4.1: more solves, then less penalty, then
// lexicographically smaller solve-time vector (descending-sorted,
// compared elementwise, smaller-first-difference wins), then
// lexicographically smaller name. Names are unique, so this is total.
func Outranks(a, b *boarddomain.TeamState) bool {
	if a.SolvedVisible != b.SolvedVisible {
		return a.SolvedVisible > b.SolvedVisible
	}
	if a.PenaltyVisible != b.PenaltyVisible {
		return a.PenaltyVisible < b.PenaltyVisible
	}
	ta, tb := a.SolveTimesVisible, b.SolveTimesVisible
	for i := 0; i < len(ta); i++ {
		if ta[i] != tb[i] {
			return ta[i] < tb[i]
		}
	}
	return a.Name < b.Name
}

// ComputeOrder returns team indices (into sys) sorted by the Outranks
// cascade, most-deserving first. Callers must have already refreshed
// every team's visible aggregates.
func ComputeOrder(sys *boarddomain.SystemState) []int {
	order := make([]int, sys.TeamCount())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return Outranks(sys.TeamByIndex(order[i]), sys.TeamByIndex(order[j]))
	})
	return order
}
