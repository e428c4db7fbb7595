// Package boarderrors defines the engine's internal error type: a
// code paired with a message, adapted from the teacher's
// srvcerror.Error (code + user-facing message) but without the
// HTTP-status field, which has no meaning on a stdin/stdout surface.
//
// Command handlers never bubble these up as Go errors returned from
// Handle (a gating failure is a valid, non-error outcome reported as
// an [Error] *line*, not a panic or an error return); instead each
// handler constructs the matching *Error and hands it to boardengine's
// writeError, which owns the one-to-one mapping from Code to the exact
// bracketed text spec.md mandates (see SPEC_FULL.md §4.14).
package boarderrors

// Error is a coded, user-facing engine error.
type Error struct {
	Code string
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// New builds an Error with the given code and message.
func New(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

const (
	CodeAddAfterStart            = "add_after_start"
	CodeAddDuplicateTeam         = "add_duplicate_team"
	CodeStartAlreadyStarted      = "start_already_started"
	CodeFreezeAlreadyFrozen      = "freeze_already_frozen"
	CodeScrollNotFrozen          = "scroll_not_frozen"
	CodeQueryRankingUnknownTeam  = "query_ranking_unknown_team"
	CodeQuerySubmUnknownTeam     = "query_submission_unknown_team"
)

func ErrAddAfterStart() *Error {
	return New(CodeAddAfterStart, "competition has started")
}

func ErrAddDuplicateTeam() *Error {
	return New(CodeAddDuplicateTeam, "duplicated team name")
}

func ErrStartAlreadyStarted() *Error {
	return New(CodeStartAlreadyStarted, "competition has started")
}

func ErrFreezeAlreadyFrozen() *Error {
	return New(CodeFreezeAlreadyFrozen, "scoreboard has been frozen")
}

func ErrScrollNotFrozen() *Error {
	return New(CodeScrollNotFrozen, "scoreboard has not been frozen")
}

func ErrQueryRankingUnknownTeam() *Error {
	return New(CodeQueryRankingUnknownTeam, "cannot find the team")
}

func ErrQuerySubmUnknownTeam() *Error {
	return New(CodeQuerySubmUnknownTeam, "cannot find the team")
}
