package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencontest/icpcboard/internal/judgement"
)

// Dispatch recognizes the command keyword in tokens[0] and builds the
// matching typed Command. Callers (the entrypoint) are expected to
// have already tokenized the line with Tokenize and skipped blank
// lines.
func Dispatch(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("dispatch: empty command")
	}
	switch tokens[0] {
	case "ADDTEAM":
		return AddTeamCmd{Name: tokens[1]}, nil
	case "START":
		duration, err := strconv.Atoi(tokens[2])
		if err != nil {
			return nil, fmt.Errorf("dispatch: bad duration: %w", err)
		}
		problems, err := strconv.Atoi(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("dispatch: bad problem count: %w", err)
		}
		return StartCmd{Duration: duration, ProblemCount: problems}, nil
	case "SUBMIT":
		status, err := judgement.Parse(tokens[5])
		if err != nil {
			return nil, fmt.Errorf("dispatch: %w", err)
		}
		t, err := strconv.Atoi(tokens[7])
		if err != nil {
			return nil, fmt.Errorf("dispatch: bad submission time: %w", err)
		}
		return SubmitCmd{
			Problem: tokens[1][0],
			Team:    tokens[3],
			Status:  status,
			Time:    t,
		}, nil
	case "FLUSH":
		return FlushCmd{}, nil
	case "FREEZE":
		return FreezeCmd{}, nil
	case "SCROLL":
		return ScrollCmd{}, nil
	case "QUERY_RANKING":
		return QueryRankingCmd{Team: tokens[1]}, nil
	case "QUERY_SUBMISSION":
		problemFilter, err := filterValue(tokens[3])
		if err != nil {
			return nil, fmt.Errorf("dispatch: %w", err)
		}
		statusFilter, err := filterValue(tokens[5])
		if err != nil {
			return nil, fmt.Errorf("dispatch: %w", err)
		}
		return QuerySubmissionCmd{
			Team:          tokens[1],
			ProblemFilter: problemFilter,
			StatusFilter:  statusFilter,
		}, nil
	case "END":
		return EndCmd{}, nil
	default:
		return nil, fmt.Errorf("dispatch: unknown command %q", tokens[0])
	}
}

// filterValue extracts the right-hand side of a "KEY=value" token,
// as used by QUERY_SUBMISSION's PROBLEM=/STATUS= clauses.
func filterValue(token string) (string, error) {
	i := strings.IndexByte(token, '=')
	if i < 0 {
		return "", fmt.Errorf("malformed filter clause %q", token)
	}
	return token[i+1:], nil
}
