// Package boardfmt renders one scoreboard line for a team, following
// the per-problem cell decision table in spec.md §4.2.
package boardfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencontest/icpcboard/internal/boarddomain"
)

// TeamLine renders "<name> <rank> <solved> <penalty> <cell_1> ... <cell_n>"
// for team under the given freeze mode.
func TeamLine(team *boarddomain.TeamState, rank int, frozen bool) string {
	var b strings.Builder
	b.WriteString(team.Name)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(rank))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(team.SolvedVisible))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(team.PenaltyVisible))
	for i := range team.Problems {
		b.WriteByte(' ')
		b.WriteString(cell(&team.Problems[i], frozen))
	}
	return b.String()
}

// cell picks the display for one problem per the table in spec.md §4.2.
func cell(p *boarddomain.ProblemState, frozen bool) string {
	if p.Solved {
		if p.WrongBeforeSolve == 0 {
			return "+"
		}
		return fmt.Sprintf("+%d", p.WrongBeforeSolve)
	}
	if frozen && p.HasPendingReveal() {
		y := len(p.FrozenSubmissions)
		if p.WrongAttemptsBeforeFreeze == 0 {
			return fmt.Sprintf("0/%d", y)
		}
		return fmt.Sprintf("-%d/%d", p.WrongAttemptsBeforeFreeze, y)
	}
	if p.WrongAttemptsTotal == 0 {
		return "."
	}
	return fmt.Sprintf("-%d", p.WrongAttemptsTotal)
}
