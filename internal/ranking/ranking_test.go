package ranking_test

import (
	"math/rand"
	"testing"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/judgement"
	"github.com/opencontest/icpcboard/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkTeam(name string, solved int, penalty int, times []int) *boarddomain.TeamState {
	t := boarddomain.NewTeam(name)
	t.SolvedVisible = solved
	t.PenaltyVisible = penalty
	t.SolveTimesVisible = times
	return t
}

func TestOutranks_SolvedCountDominates(t *testing.T) {
	a := mkTeam("a", 3, 1000, []int{1, 1, 1})
	b := mkTeam("b", 2, 1, []int{1, 1})
	assert.True(t, ranking.Outranks(a, b))
	assert.False(t, ranking.Outranks(b, a))
}

func TestOutranks_PenaltyBreaksTie(t *testing.T) {
	a := mkTeam("a", 2, 100, []int{50, 10})
	b := mkTeam("b", 2, 150, []int{50, 10})
	assert.True(t, ranking.Outranks(a, b))
}

func TestOutranks_SolveTimesBreakTie(t *testing.T) {
	a := mkTeam("a", 2, 100, []int{60, 40})
	b := mkTeam("b", 2, 100, []int{60, 50})
	assert.True(t, ranking.Outranks(a, b))
}

func TestOutranks_NameBreaksFinalTie(t *testing.T) {
	a := mkTeam("alice", 1, 10, []int{10})
	b := mkTeam("bob", 1, 10, []int{10})
	assert.True(t, ranking.Outranks(a, b))
	assert.False(t, ranking.Outranks(b, a))
}

func TestComputeOrder_Deterministic(t *testing.T) {
	sys := boarddomain.NewSystem()
	sys.AddTeam("beta")
	sys.AddTeam("alpha")
	sys.Start(300, 1)

	submit(sys, "alpha", 0, judgement.Accepted, 10)
	submit(sys, "beta", 0, judgement.Accepted, 10)
	sys.RefreshAllAggregates()

	order := ranking.ComputeOrder(sys)
	require.Len(t, order, 2)
	assert.Equal(t, "alpha", sys.TeamByIndex(order[0]).Name)
	assert.Equal(t, "beta", sys.TeamByIndex(order[1]).Name)
}

func submit(sys *boarddomain.SystemState, name string, problem int, v judgement.Verdict, time int) {
	team, _, _ := sys.TeamByName(name)
	team.Problems[problem].ApplyLiveSubmission(v, time)
}

// TestOutranks_TotalOrder is a property check (spec.md P4): Outranks is
// irreflexive, antisymmetric, and transitive over a randomly generated
// but deterministically seeded team set.
func TestOutranks_TotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	teams := make([]*boarddomain.TeamState, 20)
	for i := range teams {
		solved := r.Intn(4)
		times := make([]int, solved)
		for j := range times {
			times[j] = r.Intn(300)
		}
		sortDesc(times)
		teams[i] = mkTeam(randomName(r, i), solved, r.Intn(1000), times)
	}

	for _, a := range teams {
		assert.False(t, ranking.Outranks(a, a), "irreflexive")
	}
	for _, a := range teams {
		for _, b := range teams {
			if a == b {
				continue
			}
			if ranking.Outranks(a, b) {
				assert.False(t, ranking.Outranks(b, a), "antisymmetric")
			}
		}
	}
	for _, a := range teams {
		for _, b := range teams {
			for _, c := range teams {
				if ranking.Outranks(a, b) && ranking.Outranks(b, c) {
					assert.True(t, ranking.Outranks(a, c), "transitive")
				}
			}
		}
	}
}

func sortDesc(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] < xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func randomName(r *rand.Rand, salt int) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b) + string(rune('a'+salt%26))
}
