package boardengine

import (
	"context"
	"fmt"
	"io"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/boarderrors"
	"github.com/opencontest/icpcboard/internal/boardfmt"
	"github.com/opencontest/icpcboard/internal/dispatch"
	"github.com/opencontest/icpcboard/internal/ranking"
	"github.com/opencontest/icpcboard/internal/telemetry"
)

// scrollHandler implements SCROLL (spec.md §4.6), the incremental
// reveal: resolve one (team, problem) cell at a time, lowest-ranked
// team first and smallest-indexed problem within that team, bubbling
// the team upward and emitting a rank-change line for every strict
// improvement, until nothing is left frozen.
type scrollHandler struct {
	sys *boarddomain.SystemState
	out io.Writer
}

func (h scrollHandler) Handle(ctx context.Context, _ dispatch.ScrollCmd) error {
	sys := h.sys
	if !sys.Frozen {
		return writeError(h.out, boarderrors.ErrScrollNotFrozen())
	}
	if err := writeInfo(h.out, "Scroll scoreboard."); err != nil {
		return err
	}

	order := publishFullRanking(sys)
	if err := printScoreboard(h.out, sys, order, true); err != nil {
		return err
	}

	working := append([]int(nil), order...)
	reveals, rankChanges := 0, 0
	for {
		oldIdx := lowestRankedWithPendingReveal(sys, working)
		if oldIdx < 0 {
			break
		}
		teamIdx := working[oldIdx]
		team := sys.TeamByIndex(teamIdx)

		problemIdx := team.FirstPendingRevealProblem()
		team.Problems[problemIdx].Reveal()
		team.RefreshAggregates()
		reveals++

		newIdx := bubbleUp(sys, working, oldIdx)
		if newIdx < oldIdx {
			displaced := sys.TeamByIndex(working[newIdx+1])
			if err := writeRankChange(h.out, team, displaced); err != nil {
				return err
			}
			rankChanges++
		}
	}
	telemetry.Debugf(ctx, "cmd=SCROLL reveals=%d rank_changes=%d", reveals, rankChanges)

	if err := printScoreboard(h.out, sys, working, false); err != nil {
		return err
	}

	sys.Frozen = false
	for i := 0; i < sys.TeamCount(); i++ {
		team := sys.TeamByIndex(i)
		for j := range team.Problems {
			team.Problems[j].ClearFreeze()
		}
	}
	sys.LastFlushedOrder = working
	sys.HasFlushedAtLeastOnce = true
	return nil
}

// lowestRankedWithPendingReveal scans working from the bottom and
// returns the index of the first (i.e. worst-ranked) team that still
// has a frozen cell waiting to be revealed, or -1 if none remain
// (spec.md §4.6 step 3a).
func lowestRankedWithPendingReveal(sys *boarddomain.SystemState, working []int) int {
	for i := len(working) - 1; i >= 0; i-- {
		if sys.TeamByIndex(working[i]).HasPendingReveal() {
			return i
		}
	}
	return -1
}

// bubbleUp moves the team at working[oldIdx] upward while it outranks
// its predecessor, and returns its resting index. Only the revealed
// team's aggregates changed, so a sequence of adjacent upward swaps
// from its current slot is sufficient and necessary to restore order
// (spec.md §4.6 "Why bubble-up and not re-sort").
func bubbleUp(sys *boarddomain.SystemState, working []int, oldIdx int) int {
	idx := oldIdx
	mover := sys.TeamByIndex(working[idx])
	for idx > 0 && ranking.Outranks(mover, sys.TeamByIndex(working[idx-1])) {
		working[idx], working[idx-1] = working[idx-1], working[idx]
		idx--
	}
	return idx
}

func writeRankChange(w io.Writer, mover, displaced *boarddomain.TeamState) error {
	_, err := fmt.Fprintf(w, "%s %s %d %d\n",
		mover.Name, displaced.Name, mover.SolvedVisible, mover.PenaltyVisible)
	return err
}

func printScoreboard(w io.Writer, sys *boarddomain.SystemState, order []int, frozen bool) error {
	for i, teamIdx := range order {
		team := sys.TeamByIndex(teamIdx)
		if _, err := fmt.Fprintln(w, boardfmt.TeamLine(team, i+1, frozen)); err != nil {
			return err
		}
	}
	return nil
}
