package boarddomain

import "github.com/opencontest/icpcboard/internal/judgement"

// FrozenSubmission is one (status, time) pair received for a
// (team, problem) cell after FREEZE and before SCROLL.
type FrozenSubmission struct {
	Status judgement.Verdict
	Time   int
}

// ProblemState tracks one team's progress on one problem, holding both
// the latent (freeze-independent) trajectory and the freeze-cycle
// snapshot needed to render the frozen display. The two are kept
// strictly separate: mixing them is exactly how (I3) and the 0/y
// display get broken.
type ProblemState struct {
	Solved             bool
	SolveTime          int // defined only when Solved
	WrongBeforeSolve   int // defined only when Solved; counted into penalty
	WrongAttemptsTotal int // visible wrong-attempt count

	// Freeze-cycle snapshot, meaningful only while the system is frozen.
	WasSolvedAtFreeze         bool
	WrongAttemptsBeforeFreeze int
	FrozenSubmissions         []FrozenSubmission
}

// HasPendingReveal reports whether this cell still has submissions
// hidden behind the freeze that SCROLL has not yet resolved.
func (p *ProblemState) HasPendingReveal() bool {
	return !p.WasSolvedAtFreeze && len(p.FrozenSubmissions) > 0
}

// ApplyLiveSubmission records a submission arriving while the system
// is not frozen (spec.md §4.3). It is a no-op once the problem is
// solved (I1, I2).
func (p *ProblemState) ApplyLiveSubmission(status judgement.Verdict, time int) {
	if p.Solved {
		return
	}
	if status.IsAccepted() {
		p.Solved = true
		p.SolveTime = time
		p.WrongBeforeSolve = p.WrongAttemptsTotal
		return
	}
	p.WrongAttemptsTotal++
}

// ApplyFrozenSubmission records a submission arriving while the system
// is frozen. Submissions to a cell already solved before FREEZE are
// silently dropped per (I3).
func (p *ProblemState) ApplyFrozenSubmission(status judgement.Verdict, time int) {
	if p.WasSolvedAtFreeze {
		return
	}
	p.FrozenSubmissions = append(p.FrozenSubmissions, FrozenSubmission{Status: status, Time: time})
}

// Freeze snapshots this cell's latent state at the moment FREEZE is
// issued (spec.md §4.5).
func (p *ProblemState) Freeze() {
	p.WasSolvedAtFreeze = p.Solved
	p.WrongAttemptsBeforeFreeze = p.WrongAttemptsTotal
	p.FrozenSubmissions = nil
}

// Reveal resolves this cell's frozen submissions in arrival order
// (spec.md §4.6 step 3c). It is a no-op if the cell has nothing
// pending. Returns true if the reveal changed Solved/WrongAttemptsTotal,
// i.e. if there was anything to reveal at all.
func (p *ProblemState) Reveal() bool {
	if !p.HasPendingReveal() {
		return false
	}
	wrongBeforeAC := 0
	acceptedAt := -1
	for i, sub := range p.FrozenSubmissions {
		if sub.Status.IsAccepted() {
			acceptedAt = i
			break
		}
		wrongBeforeAC++
	}
	if acceptedAt >= 0 {
		p.Solved = true
		p.SolveTime = p.FrozenSubmissions[acceptedAt].Time
		p.WrongBeforeSolve = p.WrongAttemptsBeforeFreeze + wrongBeforeAC
		p.WrongAttemptsTotal = p.WrongBeforeSolve
	} else {
		p.WrongAttemptsTotal = p.WrongAttemptsBeforeFreeze + len(p.FrozenSubmissions)
	}
	p.FrozenSubmissions = nil
	return true
}

// ClearFreeze lifts the freeze snapshot for this cell at the end of
// SCROLL (spec.md §4.6 step 5 / I4).
func (p *ProblemState) ClearFreeze() {
	p.WasSolvedAtFreeze = false
	p.WrongAttemptsBeforeFreeze = p.WrongAttemptsTotal
	p.FrozenSubmissions = nil
}
