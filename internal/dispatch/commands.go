package dispatch

import "github.com/opencontest/icpcboard/internal/judgement"

// Command is the sum type of the nine commands in spec.md §6.
type Command interface {
	isCommand()
}

type AddTeamCmd struct{ Name string }

type StartCmd struct {
	Duration     int
	ProblemCount int
}

type SubmitCmd struct {
	Problem byte // 'A', 'B', ...
	Team    string
	Status  judgement.Verdict
	Time    int
}

type FlushCmd struct{}

type FreezeCmd struct{}

type ScrollCmd struct{}

type QueryRankingCmd struct{ Team string }

// ProblemAll / StatusAll are the sentinel filter values meaning "no
// filter on this dimension" in QUERY_SUBMISSION (spec.md §4.8 / §6).
const (
	ProblemAll = "ALL"
	StatusAll  = "ALL"
)

type QuerySubmissionCmd struct {
	Team          string
	ProblemFilter string // ProblemAll or a single uppercase letter
	StatusFilter  string // StatusAll or a verdict literal
}

type EndCmd struct{}

func (AddTeamCmd) isCommand()         {}
func (StartCmd) isCommand()           {}
func (SubmitCmd) isCommand()          {}
func (FlushCmd) isCommand()           {}
func (FreezeCmd) isCommand()          {}
func (ScrollCmd) isCommand()          {}
func (QueryRankingCmd) isCommand()    {}
func (QuerySubmissionCmd) isCommand() {}
func (EndCmd) isCommand()             {}
