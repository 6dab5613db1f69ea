package flow

import (
	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/graph"
)

// Mode selects the single-source traversal used by [Compute].
type Mode string

const (
	// ModeFrontier selects [Traverse], the FIFO frontier expansion.
	ModeFrontier Mode = "frontier"
	// ModeShortest selects [Shortest], a priority-queue shortest-path search.
	ModeShortest Mode = "shortest"
)

// Modes lists the accepted mode names.
var Modes = []string{string(ModeFrontier), string(ModeShortest)}

// ParseMode converts a mode name to a Mode. An empty name yields
// [ModeFrontier].
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeFrontier, nil
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidMode, "mode", s, Modes...); err != nil {
		return "", err
	}
	return Mode(s), nil
}

func (m Mode) traversal() func(*graph.Graph, int, bounds) (Distances, error) {
	if m == ModeShortest {
		return shortest
	}
	return traverse
}
