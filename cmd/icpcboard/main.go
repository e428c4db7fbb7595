// Command icpcboard drives a single contest run end to end: it reads
// one command per line from stdin, feeds each through the scoreboard
// engine, and writes the mandated protocol output to stdout. See
// spec.md §6 for the full grammar and output contract.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/opencontest/icpcboard/internal/boardengine"
	"github.com/opencontest/icpcboard/internal/dispatch"
	"github.com/opencontest/icpcboard/internal/telemetry"
)

func main() {
	_ = godotenv.Load() // optional; absence is not an error

	logLevel := flag.String("log-level", envOrDefault("ICPCBOARD_LOG_LEVEL", "silent"),
		"diagnostic log verbosity: silent, info, or debug (written to stderr, never stdout)")
	flag.Parse()

	ctx := telemetry.Context(context.Background(), telemetry.ParseLevel(*logLevel), os.Stderr)

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		telemetry.Debugf(ctx, "fatal error while processing contest stream: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdin *os.File, stdout *os.File) error {
	engine := boardengine.New(stdout)
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if len(dispatch.Tokenize(line)) == 0 {
			continue
		}
		cmd, err := dispatch.Dispatch(dispatch.Tokenize(line))
		if err != nil {
			return fmt.Errorf("icpcboard: %w", err)
		}
		keepGoing, err := engine.Process(ctx, cmd)
		if err != nil {
			return fmt.Errorf("icpcboard: %w", err)
		}
		if !keepGoing {
			break
		}
	}
	return scanner.Err()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
