// Package testscenario loads TOML-described command/output fixtures
// and replays them through the real dispatcher and engine, the way
// the teacher's fstask package unmarshals TOML task descriptions with
// pelletier/go-toml/v2.
package testscenario

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/opencontest/icpcboard/internal/boardengine"
	"github.com/opencontest/icpcboard/internal/dispatch"
)

// Scenario is one fixture: a sequence of command lines and the exact
// stdout they must produce when fed through a fresh engine.
type Scenario struct {
	Name     string    `toml:"name"`
	Commands []command `toml:"commands"`
	Expected string    `toml:"expected_output"`
}

type command struct {
	Line string `toml:"line"`
}

// Load parses one *.toml fixture file into a Scenario.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testscenario: read %s: %w", path, err)
	}
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testscenario: unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// Run replays s.Commands through a fresh engine and returns the full
// stdout it produced.
func (s *Scenario) Run(ctx context.Context) (string, error) {
	var out bytes.Buffer
	engine := boardengine.New(&out)
	for _, c := range s.Commands {
		tokens := dispatch.Tokenize(c.Line)
		if len(tokens) == 0 {
			continue
		}
		cmd, err := dispatch.Dispatch(tokens)
		if err != nil {
			return "", fmt.Errorf("testscenario: %s: %w", s.Name, err)
		}
		keepGoing, err := engine.Process(ctx, cmd)
		if err != nil {
			return "", fmt.Errorf("testscenario: %s: %w", s.Name, err)
		}
		if !keepGoing {
			break
		}
	}
	return out.String(), nil
}
