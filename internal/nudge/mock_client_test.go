package nudge

import (
	"context"
)

type mockClient struct {
	atRisk []string
	broken []string
	err    error
}

func (f *mockClient) HabitsAtRisk(ctx context.Context) ([]string, error) {
	return f.atRisk, f.err
}

func (f *mockClient) BrokenStreaks(ctx context.Context) ([]string, error) {
	return f.broken, f.err
}
