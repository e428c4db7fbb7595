package boardengine

import (
	"context"
	"fmt"
	"io"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/boarderrors"
	"github.com/opencontest/icpcboard/internal/dispatch"
)

// queryRankingResult carries everything writeQueryRankingResult needs
// to render spec.md §4.7's output without reaching back into the
// domain model.
type queryRankingResult struct {
	err    *boarderrors.Error
	frozen bool
	team   string
	rank   int
}

// queryRankingHandler implements QUERY_RANKING (spec.md §4.7) as a
// cqrs.QueryHandler: it resolves the result but leaves writing it to
// the caller.
type queryRankingHandler struct {
	sys *boarddomain.SystemState
}

func (h queryRankingHandler) Handle(_ context.Context, q dispatch.QueryRankingCmd) (queryRankingResult, error) {
	_, idx, ok := h.sys.TeamByName(q.Team)
	if !ok {
		return queryRankingResult{err: boarderrors.ErrQueryRankingUnknownTeam()}, nil
	}
	return queryRankingResult{
		frozen: h.sys.Frozen,
		team:   q.Team,
		rank:   h.sys.RankOf(idx),
	}, nil
}

func writeQueryRankingResult(w io.Writer, res queryRankingResult) error {
	if res.err != nil {
		return writeError(w, res.err)
	}
	if err := writeInfo(w, "Complete query ranking."); err != nil {
		return err
	}
	if res.frozen {
		if err := writeWarning(w, "Scoreboard is frozen. The ranking may be inaccurate until it were scrolled."); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s NOW AT RANKING %d\n", res.team, res.rank)
	return err
}

// querySubmissionResult carries the outcome of QUERY_SUBMISSION
// (spec.md §4.8).
type querySubmissionResult struct {
	err     *boarderrors.Error
	team    string
	found   bool
	problem byte
	status  string
	time    int
}

// querySubmissionHandler implements QUERY_SUBMISSION as a
// cqrs.QueryHandler.
type querySubmissionHandler struct {
	sys *boarddomain.SystemState
}

func (h querySubmissionHandler) Handle(_ context.Context, q dispatch.QuerySubmissionCmd) (querySubmissionResult, error) {
	team, _, ok := h.sys.TeamByName(q.Team)
	if !ok {
		return querySubmissionResult{err: boarderrors.ErrQuerySubmUnknownTeam()}, nil
	}

	var problemIdxFilter = -1
	if q.ProblemFilter != dispatch.ProblemAll {
		problemIdxFilter = int(q.ProblemFilter[0] - 'A')
	}
	statusAll := q.StatusFilter == dispatch.StatusAll

	for i := len(team.SubmissionLog) - 1; i >= 0; i-- {
		rec := team.SubmissionLog[i]
		if problemIdxFilter != -1 && rec.Problem != problemIdxFilter {
			continue
		}
		if !statusAll && rec.Status.String() != q.StatusFilter {
			continue
		}
		return querySubmissionResult{
			team:    q.Team,
			found:   true,
			problem: byte('A' + rec.Problem),
			status:  rec.Status.String(),
			time:    rec.Time,
		}, nil
	}
	return querySubmissionResult{team: q.Team, found: false}, nil
}

func writeQuerySubmissionResult(w io.Writer, res querySubmissionResult) error {
	if res.err != nil {
		return writeError(w, res.err)
	}
	if err := writeInfo(w, "Complete query submission."); err != nil {
		return err
	}
	if !res.found {
		_, err := fmt.Fprintln(w, "Cannot find any submission.")
		return err
	}
	_, err := fmt.Fprintf(w, "%s %c %s %d\n", res.team, res.problem, res.status, res.time)
	return err
}
