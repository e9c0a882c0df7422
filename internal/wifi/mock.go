package wifi

import "net/netip"

// MockDevice is a scripted Device implementation for tests. Each operation
// records itself in Calls; error fields let tests inject failures at any
// step.
type MockDevice struct {
	Calls []string

	Upstream       LinkInfo
	UpstreamErr    error
	EnsureErr      error
	ModeErr        error
	ApplyErr       error
	SharedAddr     netip.Addr
	SharedAddrErr  error
	// SharedAddrAfter delays the shared address becoming visible by that
	// many SharedAddress calls, to exercise the orchestrator's poll loop.
	SharedAddrAfter int

	Mode       Mode
	LastIface  IfaceConfig
	LastAP     APConfig
	sharedPoll int
}

var _ Device = (*MockDevice)(nil)

func (m *MockDevice) UpstreamInfo() (LinkInfo, error) {
	m.Calls = append(m.Calls, "upstream-info")
	return m.Upstream, m.UpstreamErr
}

func (m *MockDevice) EnsureSharedInterface(cfg IfaceConfig) error {
	m.Calls = append(m.Calls, "ensure-shared")
	if m.EnsureErr != nil {
		return m.EnsureErr
	}
	m.LastIface = cfg
	return nil
}

func (m *MockDevice) SetMode(mode Mode) error {
	m.Calls = append(m.Calls, "set-mode "+mode.String())
	if m.ModeErr != nil {
		return m.ModeErr
	}
	m.Mode = mode
	return nil
}

func (m *MockDevice) ApplyAccessPoint(cfg APConfig) error {
	m.Calls = append(m.Calls, "apply-ap")
	if m.ApplyErr != nil {
		return m.ApplyErr
	}
	m.LastAP = cfg
	return nil
}

func (m *MockDevice) SharedAddress() (netip.Addr, error) {
	m.Calls = append(m.Calls, "shared-address")
	if m.SharedAddrErr != nil {
		return netip.Addr{}, m.SharedAddrErr
	}
	m.sharedPoll++
	if m.sharedPoll <= m.SharedAddrAfter {
		return netip.Addr{}, nil
	}
	return m.SharedAddr, nil
}
