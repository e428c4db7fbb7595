// Package cqrs carries the command/query handler interfaces every
// engine operation implements, mirroring the teacher's
// decorator.CmdHandler[P] / QueryHandler[Q, R] split: mutating
// operations (ADDTEAM, START, SUBMIT, FLUSH, FREEZE, SCROLL, END)
// satisfy CmdHandler, and the two read-only operations (QUERY_RANKING,
// QUERY_SUBMISSION) satisfy QueryHandler.
package cqrs

import "context"

// CmdHandler executes a mutating operation given its params P. It
// writes any mandated protocol output itself and returns a non-nil Go
// error only for a genuine I/O failure, never for a gating condition
// (those are reported as output lines, not errors).
type CmdHandler[P any] interface {
	Handle(ctx context.Context, p P) error
}

// QueryHandler executes a read-only operation given its params Q and
// returns a result R for the caller to format and print.
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}
