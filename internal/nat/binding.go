package nat

import (
	"net/netip"
	"time"
)

// DefaultSettle is how long to wait between unbinding an old address and
// binding a new one, letting the translation mechanism quiesce.
const DefaultSettle = 100 * time.Millisecond

// Binding tracks which external address currently has translation active.
// At most one address is bound at a time. Callers serialize access; the
// gateway orchestrator is the only mutator.
type Binding struct {
	tr     Translator
	settle time.Duration

	addr  netip.Addr
	bound bool
}

// NewBinding creates a binding tracker around a translator. A settle
// duration of 0 selects DefaultSettle.
func NewBinding(tr Translator, settle time.Duration) *Binding {
	if settle == 0 {
		settle = DefaultSettle
	}
	return &Binding{tr: tr, settle: settle}
}

// Bound reports the currently bound address, if any.
func (b *Binding) Bound() (netip.Addr, bool) {
	return b.addr, b.bound
}

// Rebind ensures translation is bound on addr. If translation is already
// bound there, nothing happens. If it is bound on a different address, the
// old binding is removed first and the mechanism is given time to settle
// before the new one is installed, so two bindings are never live at once.
func (b *Binding) Rebind(addr netip.Addr) error {
	if b.bound && b.addr == addr {
		return nil
	}

	if b.bound {
		if err := b.tr.Unbind(b.addr); err != nil {
			return err
		}
		b.bound = false
		b.addr = netip.Addr{}
		time.Sleep(b.settle)
	}

	if err := b.tr.Bind(addr); err != nil {
		return err
	}
	b.addr = addr
	b.bound = true
	return nil
}

// Release unbinds the current translation, if any. The binding record is
// cleared even when the unbind fails, so a later Rebind starts fresh.
func (b *Binding) Release() error {
	if !b.bound {
		return nil
	}
	err := b.tr.Unbind(b.addr)
	b.addr = netip.Addr{}
	b.bound = false
	return err
}
