package testscenario_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/opencontest/icpcboard/internal/testscenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.toml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "expected at least one scenario fixture")

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := testscenario.Load(path)
			require.NoError(t, err)

			got, err := scenario.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, scenario.Expected, got, "scenario %q", scenario.Name)
		})
	}
}
