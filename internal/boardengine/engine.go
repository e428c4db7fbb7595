// Package boardengine wires the domain model (boarddomain), the
// ranking comparator, and the formatter into the nine command
// handlers spec.md §4 and §6 describe, and dispatches incoming
// dispatch.Command values to them.
package boardengine

import (
	"context"
	"fmt"
	"io"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/cqrs"
	"github.com/opencontest/icpcboard/internal/dispatch"
	"github.com/opencontest/icpcboard/internal/telemetry"
)

var (
	_ cqrs.CmdHandler[dispatch.AddTeamCmd]  = addTeamHandler{}
	_ cqrs.CmdHandler[dispatch.StartCmd]    = startHandler{}
	_ cqrs.CmdHandler[dispatch.SubmitCmd]   = submitHandler{}
	_ cqrs.CmdHandler[dispatch.FlushCmd]    = flushHandler{}
	_ cqrs.CmdHandler[dispatch.FreezeCmd]   = freezeHandler{}
	_ cqrs.CmdHandler[dispatch.ScrollCmd]   = scrollHandler{}
	_ cqrs.CmdHandler[dispatch.EndCmd]      = endHandler{}

	_ cqrs.QueryHandler[dispatch.QueryRankingCmd, queryRankingResult]       = queryRankingHandler{}
	_ cqrs.QueryHandler[dispatch.QuerySubmissionCmd, querySubmissionResult] = querySubmissionHandler{}
)

// Engine is the top-level, process-local owner of contest state. It is
// not safe for concurrent use, matching spec.md §5: commands are
// processed one at a time, each running to completion before the next
// is read.
type Engine struct {
	sys *boarddomain.SystemState
	out io.Writer

	addTeam         addTeamHandler
	start           startHandler
	submit          submitHandler
	flush           flushHandler
	freeze          freezeHandler
	scroll          scrollHandler
	queryRanking    queryRankingHandler
	querySubmission querySubmissionHandler
	end             endHandler
}

// New builds an Engine that writes all mandated protocol output to out.
func New(out io.Writer) *Engine {
	sys := boarddomain.NewSystem()
	return &Engine{
		sys:             sys,
		out:             out,
		addTeam:         addTeamHandler{sys: sys, out: out},
		start:           startHandler{sys: sys, out: out},
		submit:          submitHandler{sys: sys},
		flush:           flushHandler{sys: sys, out: out},
		freeze:          freezeHandler{sys: sys, out: out},
		scroll:          scrollHandler{sys: sys, out: out},
		queryRanking:    queryRankingHandler{sys: sys},
		querySubmission: querySubmissionHandler{sys: sys},
		end:             endHandler{out: out},
	}
}

// Process dispatches a single already-parsed command and reports
// whether the engine should keep reading further commands (false once
// END has been processed).
func (e *Engine) Process(ctx context.Context, cmd dispatch.Command) (keepGoing bool, err error) {
	switch c := cmd.(type) {
	case dispatch.AddTeamCmd:
		telemetry.Debugf(ctx, "cmd=ADDTEAM team=%s", c.Name)
		return true, e.addTeam.Handle(ctx, c)
	case dispatch.StartCmd:
		telemetry.Debugf(ctx, "cmd=START duration=%d problems=%d", c.Duration, c.ProblemCount)
		return true, e.start.Handle(ctx, c)
	case dispatch.SubmitCmd:
		telemetry.Debugf(ctx, "cmd=SUBMIT team=%s status=%s", c.Team, c.Status)
		return true, e.submit.Handle(ctx, c)
	case dispatch.FlushCmd:
		telemetry.Debugf(ctx, "cmd=FLUSH")
		return true, e.flush.Handle(ctx, c)
	case dispatch.FreezeCmd:
		telemetry.Debugf(ctx, "cmd=FREEZE")
		return true, e.freeze.Handle(ctx, c)
	case dispatch.ScrollCmd:
		telemetry.Debugf(ctx, "cmd=SCROLL")
		return true, e.scroll.Handle(ctx, c)
	case dispatch.QueryRankingCmd:
		telemetry.Debugf(ctx, "cmd=QUERY_RANKING team=%s", c.Team)
		res, err := e.queryRanking.Handle(ctx, c)
		if err != nil {
			return true, err
		}
		return true, writeQueryRankingResult(e.out, res)
	case dispatch.QuerySubmissionCmd:
		telemetry.Debugf(ctx, "cmd=QUERY_SUBMISSION team=%s", c.Team)
		res, err := e.querySubmission.Handle(ctx, c)
		if err != nil {
			return true, err
		}
		return true, writeQuerySubmissionResult(e.out, res)
	case dispatch.EndCmd:
		telemetry.Debugf(ctx, "cmd=END")
		if err := e.end.Handle(ctx, c); err != nil {
			return false, err
		}
		return false, nil
	default:
		return true, fmt.Errorf("boardengine: unhandled command type %T", cmd)
	}
}
