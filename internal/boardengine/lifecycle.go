package boardengine

import (
	"context"
	"fmt"
	"io"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/boarderrors"
	"github.com/opencontest/icpcboard/internal/dispatch"
)

// addTeamHandler implements ADDTEAM (spec.md §6/§7): teams may be
// registered only before START, and names must be unique.
type addTeamHandler struct {
	sys *boarddomain.SystemState
	out io.Writer
}

func (h addTeamHandler) Handle(_ context.Context, p dispatch.AddTeamCmd) error {
	if h.sys.Started {
		return writeError(h.out, boarderrors.ErrAddAfterStart())
	}
	if h.sys.HasTeam(p.Name) {
		return writeError(h.out, boarderrors.ErrAddDuplicateTeam())
	}
	h.sys.AddTeam(p.Name)
	return writeInfo(h.out, "Add successfully.")
}

// startHandler implements START (spec.md §3 "Lifecycle" / §6): sizes
// every team's problem array and seeds the lexicographic ranking
// baseline QUERY_RANKING uses before the first FLUSH.
type startHandler struct {
	sys *boarddomain.SystemState
	out io.Writer
}

func (h startHandler) Handle(_ context.Context, p dispatch.StartCmd) error {
	if h.sys.Started {
		return writeError(h.out, boarderrors.ErrStartAlreadyStarted())
	}
	h.sys.Start(p.Duration, p.ProblemCount)
	h.sys.SeedLexicographicOrder()
	return writeInfo(h.out, "Competition starts.")
}

// endHandler implements END (spec.md §6): a single info line, after
// which the caller stops reading further commands.
type endHandler struct {
	out io.Writer
}

func (h endHandler) Handle(_ context.Context, _ dispatch.EndCmd) error {
	return writeInfo(h.out, "Competition ends.")
}

func writeInfo(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "[Info]%s\n", msg)
	return err
}

func writeError(w io.Writer, e *boarderrors.Error) error {
	_, err := fmt.Fprintf(w, "[Error]%s\n", capitalizedErrorText(e))
	return err
}

func writeWarning(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "[Warning]%s\n", msg)
	return err
}

// capitalizedErrorText maps a boarderrors.Error to the exact
// "<Action> failed: <reason>." text spec.md §4/§7 mandates. The
// mapping is centralized here (see SPEC_FULL.md §7's table) so the
// protocol text can never drift from the error code that produced it.
func capitalizedErrorText(e *boarderrors.Error) string {
	switch e.Code {
	case boarderrors.CodeAddAfterStart:
		return "Add failed: competition has started."
	case boarderrors.CodeAddDuplicateTeam:
		return "Add failed: duplicated team name."
	case boarderrors.CodeStartAlreadyStarted:
		return "Start failed: competition has started."
	case boarderrors.CodeFreezeAlreadyFrozen:
		return "Freeze failed: scoreboard has been frozen."
	case boarderrors.CodeScrollNotFrozen:
		return "Scroll failed: scoreboard has not been frozen."
	case boarderrors.CodeQueryRankingUnknownTeam:
		return "Query ranking failed: cannot find the team."
	case boarderrors.CodeQuerySubmUnknownTeam:
		return "Query submission failed: cannot find the team."
	default:
		return e.Msg
	}
}
