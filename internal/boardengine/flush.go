package boardengine

import (
	"context"
	"io"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/dispatch"
	"github.com/opencontest/icpcboard/internal/ranking"
)

// flushHandler implements FLUSH (spec.md §4.4): recompute every
// team's visible aggregates, compute and publish the full ranking, and
// report success.
type flushHandler struct {
	sys *boarddomain.SystemState
	out io.Writer
}

func (h flushHandler) Handle(_ context.Context, _ dispatch.FlushCmd) error {
	publishFullRanking(h.sys)
	return writeInfo(h.out, "Flush scoreboard.")
}

// publishFullRanking recomputes aggregates, computes the current
// ranking, and stores it as sys.LastFlushedOrder. Shared by FLUSH and
// the first step of SCROLL (spec.md §4.6 step 2).
func publishFullRanking(sys *boarddomain.SystemState) []int {
	sys.RefreshAllAggregates()
	order := ranking.ComputeOrder(sys)
	sys.LastFlushedOrder = order
	sys.HasFlushedAtLeastOnce = true
	return order
}
