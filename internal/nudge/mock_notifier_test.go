package nudge

type mockNotifier struct {
	called bool
	atRisk []string
	broken []string
	err    error
}

func (m *mockNotifier) SendNudge(atRisk, broken []string) error {
	m.called = true
	m.atRisk = atRisk
	m.broken = broken
	return m.err
}
