package nudge

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestNudge_Sends(t *testing.T) {
	q := &mockClient{atRisk: []string{"guitar"}, broken: []string{"coding"}}
	n := &mockNotifier{}

	sent, err := Nudge(context.Background(), q, n)
	if err != nil {
		t.Fatal(err)
	}
	if !sent || !n.called {
		t.Fatal("expected a nudge to be sent")
	}
	if !slices.Equal(n.atRisk, []string{"guitar"}) || !slices.Equal(n.broken, []string{"coding"}) {
		t.Fatalf("got at-risk %v broken %v", n.atRisk, n.broken)
	}
}

func TestNudge_NothingToSend(t *testing.T) {
	n := &mockNotifier{}
	sent, err := Nudge(context.Background(), &mockClient{}, n)
	if err != nil {
		t.Fatal(err)
	}
	if sent || n.called {
		t.Fatal("expected no nudge")
	}
}

func TestNudge_Errors(t *testing.T) {
	boom := errors.New("boom")

	if _, err := Nudge(context.Background(), &mockClient{err: boom}, &mockNotifier{}); !errors.Is(err, boom) {
		t.Fatalf("query error: got %v", err)
	}

	n := &mockNotifier{err: boom}
	sent, err := Nudge(context.Background(), &mockClient{atRisk: []string{"guitar"}}, n)
	if !errors.Is(err, boom) || sent {
		t.Fatalf("notifier error: sent=%v err=%v", sent, err)
	}
}
