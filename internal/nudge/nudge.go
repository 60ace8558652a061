package nudge

import (
	"context"
	"fmt"

	"github.com/brk3/habittracker/internal/logger"
)

// Nudge sends a single reminder listing at-risk and broken streaks. Nothing is
// sent when both lists are empty; the returned bool reports whether a
// reminder went out.
func Nudge(ctx context.Context, q Querier, n Notifier) (bool, error) {
	atRisk, err := q.HabitsAtRisk(ctx)
	if err != nil {
		return false, fmt.Errorf("query at-risk habits: %w", err)
	}
	broken, err := q.BrokenStreaks(ctx)
	if err != nil {
		return false, fmt.Errorf("query broken streaks: %w", err)
	}

	if len(atRisk) == 0 && len(broken) == 0 {
		logger.Info("No streaks need a nudge")
		return false, nil
	}

	if err := n.SendNudge(atRisk, broken); err != nil {
		return false, fmt.Errorf("send nudge: %w", err)
	}
	logger.Info("Sent nudge", "at_risk", len(atRisk), "broken", len(broken))
	return true, nil
}
