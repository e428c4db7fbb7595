package judgement_test

import (
	"testing"

	"github.com/opencontest/icpcboard/internal/judgement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAccepted(t *testing.T) {
	assert.True(t, judgement.Accepted.IsAccepted())
	assert.False(t, judgement.WrongAnswer.IsAccepted())
	assert.False(t, judgement.RuntimeError.IsAccepted())
	assert.False(t, judgement.TimeLimitExceed.IsAccepted())
}

func TestParse(t *testing.T) {
	v, err := judgement.Parse("Accepted")
	require.NoError(t, err)
	assert.Equal(t, judgement.Accepted, v)

	_, err = judgement.Parse("Something_Else")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Time_Limit_Exceed", judgement.TimeLimitExceed.String())
}
