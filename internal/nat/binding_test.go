package nat

import (
	"errors"
	"fmt"
	"net/netip"
	"testing"
)

// recordingTranslator records bind/unbind calls in order.
type recordingTranslator struct {
	calls     []string
	bindErr   error
	unbindErr error
}

func (r *recordingTranslator) Bind(addr netip.Addr) error {
	r.calls = append(r.calls, "bind "+addr.String())
	return r.bindErr
}

func (r *recordingTranslator) Unbind(addr netip.Addr) error {
	r.calls = append(r.calls, "unbind "+addr.String())
	return r.unbindErr
}

func addr(s string) netip.Addr {
	return netip.MustParseAddr(s)
}

func TestRebindFirstTime(t *testing.T) {
	tr := &recordingTranslator{}
	b := NewBinding(tr, 1)

	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatalf("Rebind() error = %v", err)
	}

	if len(tr.calls) != 1 || tr.calls[0] != "bind 192.168.4.1" {
		t.Errorf("calls = %v, want [bind 192.168.4.1]", tr.calls)
	}
	if a, ok := b.Bound(); !ok || a != addr("192.168.4.1") {
		t.Errorf("Bound() = %v, %v, want 192.168.4.1, true", a, ok)
	}
}

func TestRebindSameAddressIsNoop(t *testing.T) {
	tr := &recordingTranslator{}
	b := NewBinding(tr, 1)

	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatal(err)
	}
	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatal(err)
	}

	if len(tr.calls) != 1 {
		t.Errorf("calls = %v, want a single bind", tr.calls)
	}
}

func TestRebindNewAddressUnbindsOldFirst(t *testing.T) {
	tr := &recordingTranslator{}
	b := NewBinding(tr, 1)

	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatal(err)
	}
	if err := b.Rebind(addr("192.168.5.1")); err != nil {
		t.Fatal(err)
	}

	want := []string{"bind 192.168.4.1", "unbind 192.168.4.1", "bind 192.168.5.1"}
	if fmt.Sprint(tr.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", tr.calls, want)
	}
	if a, _ := b.Bound(); a != addr("192.168.5.1") {
		t.Errorf("Bound() = %v, want 192.168.5.1", a)
	}
}

func TestRebindBindFailure(t *testing.T) {
	bindErr := errors.New("refused")
	tr := &recordingTranslator{bindErr: bindErr}
	b := NewBinding(tr, 1)

	if err := b.Rebind(addr("192.168.4.1")); !errors.Is(err, bindErr) {
		t.Fatalf("Rebind() error = %v, want %v", err, bindErr)
	}
	if _, ok := b.Bound(); ok {
		t.Error("Bound() reports bound after failed bind")
	}
}

func TestRebindUnbindFailureKeepsOldBinding(t *testing.T) {
	unbindErr := errors.New("busy")
	tr := &recordingTranslator{}
	b := NewBinding(tr, 1)

	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatal(err)
	}

	tr.unbindErr = unbindErr
	if err := b.Rebind(addr("192.168.5.1")); !errors.Is(err, unbindErr) {
		t.Fatalf("Rebind() error = %v, want %v", err, unbindErr)
	}

	// The failed unbind must not be followed by a bind of the new address.
	for _, c := range tr.calls {
		if c == "bind 192.168.5.1" {
			t.Errorf("new address bound despite unbind failure: %v", tr.calls)
		}
	}
}

func TestRelease(t *testing.T) {
	tr := &recordingTranslator{}
	b := NewBinding(tr, 1)

	if err := b.Release(); err != nil {
		t.Fatalf("Release() on unbound binding error = %v", err)
	}
	if len(tr.calls) != 0 {
		t.Errorf("Release() on unbound binding made calls: %v", tr.calls)
	}

	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatal(err)
	}
	if err := b.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, ok := b.Bound(); ok {
		t.Error("Bound() reports bound after Release")
	}
}

func TestReleaseClearsRecordOnError(t *testing.T) {
	tr := &recordingTranslator{}
	b := NewBinding(tr, 1)

	if err := b.Rebind(addr("192.168.4.1")); err != nil {
		t.Fatal(err)
	}

	tr.unbindErr = errors.New("gone")
	if err := b.Release(); err == nil {
		t.Fatal("Release() = nil, want error")
	}
	if _, ok := b.Bound(); ok {
		t.Error("Bound() reports bound after failed Release")
	}
}

func TestSubnetFor(t *testing.T) {
	got := subnetFor(addr("192.168.4.1"))
	if got.String() != "192.168.4.0/24" {
		t.Errorf("subnetFor(192.168.4.1) = %s, want 192.168.4.0/24", got)
	}
}
