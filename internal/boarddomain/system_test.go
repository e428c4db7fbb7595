package boarddomain_test

import (
	"testing"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLexicographicOrder(t *testing.T) {
	sys := boarddomain.NewSystem()
	sys.AddTeam("zeta")
	sys.AddTeam("alpha")
	sys.AddTeam("mu")
	sys.Start(300, 1)
	sys.SeedLexicographicOrder()

	var names []string
	for _, idx := range sys.LastFlushedOrder {
		names = append(names, sys.TeamByIndex(idx).Name)
	}
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, names)
	assert.False(t, sys.HasFlushedAtLeastOnce)
}

func TestTeamByName(t *testing.T) {
	sys := boarddomain.NewSystem()
	sys.AddTeam("alpha")

	team, idx, ok := sys.TeamByName("alpha")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "alpha", team.Name)

	_, _, ok = sys.TeamByName("missing")
	assert.False(t, ok)
}

func TestRankOf(t *testing.T) {
	sys := boarddomain.NewSystem()
	sys.AddTeam("a")
	sys.AddTeam("b")
	sys.Start(1, 1)
	sys.SeedLexicographicOrder()

	assert.Equal(t, 1, sys.RankOf(0))
	assert.Equal(t, 2, sys.RankOf(1))
}
