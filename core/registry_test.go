package core

import "testing"

func TestLookupReturnsStableHandles(t *testing.T) {
	for n := uint32(0); n < NumPins; n++ {
		p := Lookup(n)
		if p.Number() != n {
			t.Errorf("Lookup(%d).Number() = %d", n, p.Number())
		}
		if p.regs != ResolveAddresses(n) {
			t.Errorf("Lookup(%d) addresses = %+v, want %+v", n, p.regs, ResolveAddresses(n))
		}
		if Lookup(n) != p {
			t.Errorf("Lookup(%d) returned different handles", n)
		}
	}
}

func TestLookupOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lookup(58) did not panic")
		}
	}()
	Lookup(NumPins)
}

func TestRegistryStartsUnconfigured(t *testing.T) {
	// Pick a pin no other test configures through the registry.
	if f := Lookup(57).Function(); f != FuncUnset {
		t.Errorf("fresh registry pin function = %v, want unset", f)
	}
}
