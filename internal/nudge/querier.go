package nudge

import (
	"context"
)

type Querier interface {
	HabitsAtRisk(ctx context.Context) ([]string, error)
	BrokenStreaks(ctx context.Context) ([]string, error)
}

type Notifier interface {
	SendNudge(atRisk, broken []string) error
}
