package boarddomain

import "sort"

// SystemState is the entire mutable state of one contest run: the
// lifecycle flags, the team registry, and the last published ranking
// order.
type SystemState struct {
	Started      bool
	Frozen       bool
	Duration     int
	ProblemCount int

	teams       []*TeamState
	teamIndexOf map[string]int

	// LastFlushedOrder holds team indices (into teams) in the most
	// recently published ranking order.
	LastFlushedOrder      []int
	HasFlushedAtLeastOnce bool
}

// NewSystem returns a fresh, unstarted contest.
func NewSystem() *SystemState {
	return &SystemState{teamIndexOf: make(map[string]int)}
}

// TeamCount returns the number of registered teams.
func (s *SystemState) TeamCount() int {
	return len(s.teams)
}

// TeamByIndex returns the team at the given registry index.
func (s *SystemState) TeamByIndex(idx int) *TeamState {
	return s.teams[idx]
}

// TeamByName looks a team up by its unique name.
func (s *SystemState) TeamByName(name string) (*TeamState, int, bool) {
	idx, ok := s.teamIndexOf[name]
	if !ok {
		return nil, 0, false
	}
	return s.teams[idx], idx, true
}

// HasTeam reports whether a team with this name is already registered.
func (s *SystemState) HasTeam(name string) bool {
	_, ok := s.teamIndexOf[name]
	return ok
}

// AddTeam registers a new team. Callers must check HasTeam and Started
// themselves; AddTeam assumes those gates already passed (the gating
// logic lives in the lifecycle controller, not in the domain model).
func (s *SystemState) AddTeam(name string) *TeamState {
	team := NewTeam(name)
	s.teamIndexOf[name] = len(s.teams)
	s.teams = append(s.teams, team)
	return team
}

// Start sizes every team's problem array and marks the contest started.
// Callers are responsible for the "already started" gate.
func (s *SystemState) Start(duration, problemCount int) {
	s.Started = true
	s.Duration = duration
	s.ProblemCount = problemCount
	for _, t := range s.teams {
		t.InitProblems(problemCount)
	}
}

// SeedLexicographicOrder sets LastFlushedOrder to lexicographic team
// name order, the baseline spec.md §3 mandates for QUERY_RANKING before
// any explicit FLUSH.
func (s *SystemState) SeedLexicographicOrder() {
	order := make([]int, len(s.teams))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return s.teams[order[i]].Name < s.teams[order[j]].Name
	})
	s.LastFlushedOrder = order
	s.HasFlushedAtLeastOnce = false
}

// RankOf returns the 1-based position of the team at teamIdx within
// LastFlushedOrder, or 0 if it is not present (should not happen once
// the contest has started, since every registered team is always
// present in every published order).
func (s *SystemState) RankOf(teamIdx int) int {
	for i, idx := range s.LastFlushedOrder {
		if idx == teamIdx {
			return i + 1
		}
	}
	return 0
}

// RefreshAllAggregates recomputes every team's visible aggregates.
func (s *SystemState) RefreshAllAggregates() {
	for _, t := range s.teams {
		t.RefreshAggregates()
	}
}
