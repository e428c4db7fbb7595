package boardengine

import (
	"context"
	"io"

	"github.com/opencontest/icpcboard/internal/boarddomain"
	"github.com/opencontest/icpcboard/internal/boarderrors"
	"github.com/opencontest/icpcboard/internal/dispatch"
)

// freezeHandler implements FREEZE (spec.md §4.5).
type freezeHandler struct {
	sys *boarddomain.SystemState
	out io.Writer
}

func (h freezeHandler) Handle(_ context.Context, _ dispatch.FreezeCmd) error {
	if h.sys.Frozen {
		return writeError(h.out, boarderrors.ErrFreezeAlreadyFrozen())
	}
	h.sys.Frozen = true
	for i := 0; i < h.sys.TeamCount(); i++ {
		team := h.sys.TeamByIndex(i)
		for j := range team.Problems {
			team.Problems[j].Freeze()
		}
	}
	return writeInfo(h.out, "Freeze scoreboard.")
}
