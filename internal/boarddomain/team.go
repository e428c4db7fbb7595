package boarddomain

import (
	"sort"

	"github.com/google/uuid"
	"github.com/opencontest/icpcboard/internal/judgement"
)

// SubmissionRecord is an immutable entry in a team's chronological
// submission log. It is appended once by intake and never mutated or
// deleted afterwards.
type SubmissionRecord struct {
	UUID     uuid.UUID // internal correlation id, never printed
	Problem  int       // 0-based problem index
	Status   judgement.Verdict
	Time     int
}

// TeamState holds one team's registered identity, its per-problem
// progress, the full submission history, and the visible aggregates
// derived from the former. Aggregates are a pure function of Problems
// (spec.md §3); RefreshAggregates recomputes them from scratch, which
// is the "simple strategy" spec.md §9 calls correct and easy to
// validate.
type TeamState struct {
	UUID uuid.UUID // internal correlation id, never printed
	Name string

	Problems []ProblemState

	SolvedVisible     int
	PenaltyVisible    int
	SolveTimesVisible []int // descending-sorted

	SubmissionLog []SubmissionRecord
}

// NewTeam builds a registered-but-not-yet-started team. Problems is
// sized later, at START, once the problem count is known.
func NewTeam(name string) *TeamState {
	return &TeamState{UUID: uuid.New(), Name: name}
}

// InitProblems sizes the per-problem state array at START.
func (t *TeamState) InitProblems(problemCount int) {
	t.Problems = make([]ProblemState, problemCount)
	t.RefreshAggregates()
}

// RefreshAggregates recomputes SolvedVisible, PenaltyVisible, and
// SolveTimesVisible from the current Problems slice.
func (t *TeamState) RefreshAggregates() {
	t.SolvedVisible = 0
	t.PenaltyVisible = 0
	t.SolveTimesVisible = t.SolveTimesVisible[:0]
	for _, p := range t.Problems {
		if !p.Solved {
			continue
		}
		t.SolvedVisible++
		t.PenaltyVisible += 20*p.WrongBeforeSolve + p.SolveTime
		t.SolveTimesVisible = append(t.SolveTimesVisible, p.SolveTime)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t.SolveTimesVisible)))
}

// RecordSubmission appends a submission to the team's log regardless
// of freeze state (spec.md §4.3). It does not touch Problems; callers
// are responsible for routing the submission into the right cell.
func (t *TeamState) RecordSubmission(problem int, status judgement.Verdict, time int) {
	t.SubmissionLog = append(t.SubmissionLog, SubmissionRecord{
		UUID:    uuid.New(),
		Problem: problem,
		Status:  status,
		Time:    time,
	})
}

// HasPendingReveal reports whether any problem still has a frozen
// cell waiting to be resolved by SCROLL.
func (t *TeamState) HasPendingReveal() bool {
	for i := range t.Problems {
		if t.Problems[i].HasPendingReveal() {
			return true
		}
	}
	return false
}

// FirstPendingRevealProblem returns the smallest-indexed problem with
// a pending reveal, or -1 if none (spec.md §4.6 step 3b).
func (t *TeamState) FirstPendingRevealProblem() int {
	for i := range t.Problems {
		if t.Problems[i].HasPendingReveal() {
			return i
		}
	}
	return -1
}
