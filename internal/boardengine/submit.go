package boardengine

import (
	"context"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/dispatch"
)

// submitHandler implements SUBMIT (spec.md §4.3). It produces no
// output of its own: a submission either updates latent state, gets
// deferred behind a freeze, or is silently dropped.
type submitHandler struct {
	sys *boarddomain.SystemState
}

func (h submitHandler) Handle(_ context.Context, p dispatch.SubmitCmd) error {
	team, _, ok := h.sys.TeamByName(p.Team)
	if !ok {
		// Input is contractually valid (spec.md §7); an unknown team
		// is silently ignored and never affects existing state.
		return nil
	}

	problemIdx := int(p.Problem - 'A')
	team.RecordSubmission(problemIdx, p.Status, p.Time)

	cell := &team.Problems[problemIdx]
	if h.sys.Frozen {
		cell.ApplyFrozenSubmission(p.Status, p.Time)
		return nil
	}
	cell.ApplyLiveSubmission(p.Status, p.Time)
	team.RefreshAggregates()
	return nil
}
