package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/opencontest/icpcboard/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestSilentLevelProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := telemetry.Context(context.Background(), telemetry.LevelSilent, &buf)
	telemetry.Debugf(ctx, "should not appear")
	assert.Empty(t, buf.String())
}

func TestInfoLevelProducesNoDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := telemetry.Context(context.Background(), telemetry.LevelInfo, &buf)
	telemetry.Debugf(ctx, "should not appear either")
	assert.Empty(t, buf.String())
}

func TestDebugLevelWrites(t *testing.T) {
	var buf bytes.Buffer
	ctx := telemetry.Context(context.Background(), telemetry.LevelDebug, &buf)
	telemetry.Debugf(ctx, "cmd=FLUSH")
	assert.Contains(t, buf.String(), "cmd=FLUSH")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, telemetry.LevelDebug, telemetry.ParseLevel("debug"))
	assert.Equal(t, telemetry.LevelInfo, telemetry.ParseLevel("info"))
	assert.Equal(t, telemetry.LevelSilent, telemetry.ParseLevel("garbage"))
	assert.Equal(t, telemetry.LevelSilent, telemetry.ParseLevel(""))
}
