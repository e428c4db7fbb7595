package dispatch_test

import (
	"testing"

	"github.com/opencontest/icpcboard/internal/dispatch"
	"github.com/opencontest/icpcboard/internal/judgement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"ADDTEAM", "alpha"}, dispatch.Tokenize("ADDTEAM alpha"))
	assert.Equal(t, []string{"ADDTEAM", "alpha"}, dispatch.Tokenize("  ADDTEAM   alpha  "))
	assert.Empty(t, dispatch.Tokenize("   "))
}

func TestDispatch_AddTeam(t *testing.T) {
	cmd, err := dispatch.Dispatch(dispatch.Tokenize("ADDTEAM alpha"))
	require.NoError(t, err)
	assert.Equal(t, dispatch.AddTeamCmd{Name: "alpha"}, cmd)
}

func TestDispatch_Start(t *testing.T) {
	cmd, err := dispatch.Dispatch(dispatch.Tokenize("START DURATION 300 PROBLEM 4"))
	require.NoError(t, err)
	assert.Equal(t, dispatch.StartCmd{Duration: 300, ProblemCount: 4}, cmd)
}

func TestDispatch_Submit(t *testing.T) {
	cmd, err := dispatch.Dispatch(dispatch.Tokenize("SUBMIT A BY alpha WITH Accepted AT 30"))
	require.NoError(t, err)
	assert.Equal(t, dispatch.SubmitCmd{
		Problem: 'A',
		Team:    "alpha",
		Status:  judgement.Accepted,
		Time:    30,
	}, cmd)
}

func TestDispatch_QuerySubmission(t *testing.T) {
	cmd, err := dispatch.Dispatch(dispatch.Tokenize(
		"QUERY_SUBMISSION alpha WHERE PROBLEM=ALL AND STATUS=Wrong_Answer"))
	require.NoError(t, err)
	assert.Equal(t, dispatch.QuerySubmissionCmd{
		Team:          "alpha",
		ProblemFilter: "ALL",
		StatusFilter:  "Wrong_Answer",
	}, cmd)
}

func TestDispatch_SimpleKeywords(t *testing.T) {
	for _, tc := range []struct {
		line string
		want dispatch.Command
	}{
		{"FLUSH", dispatch.FlushCmd{}},
		{"FREEZE", dispatch.FreezeCmd{}},
		{"SCROLL", dispatch.ScrollCmd{}},
		{"END", dispatch.EndCmd{}},
	} {
		cmd, err := dispatch.Dispatch(dispatch.Tokenize(tc.line))
		require.NoError(t, err)
		assert.Equal(t, tc.want, cmd)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	_, err := dispatch.Dispatch(dispatch.Tokenize("BOGUS foo"))
	assert.Error(t, err)
}
