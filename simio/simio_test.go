package simio

import "testing"

func TestReadWriteCounters(t *testing.T) {
	s := New()

	if v := s.Read32(0x100); v != 0 {
		t.Errorf("unwritten register read as 0x%X, want 0", v)
	}
	if s.Reads(0x100) != 1 {
		t.Errorf("expected 1 read, got %d", s.Reads(0x100))
	}

	s.Write32(0x100, 0xDEAD)
	if v := s.Reg(0x100); v != 0xDEAD {
		t.Errorf("register holds 0x%X, want 0xDEAD", v)
	}
	if s.Writes(0x100) != 1 {
		t.Errorf("expected 1 write, got %d", s.Writes(0x100))
	}

	// Reg and Load must not disturb the counters.
	s.Load(0x200, 0xBEEF)
	if s.Writes(0x200) != 0 || s.Reads(0x200) != 0 {
		t.Errorf("Load counted as an access: reads=%d writes=%d",
			s.Reads(0x200), s.Writes(0x200))
	}
	if v := s.Reg(0x200); v != 0xBEEF {
		t.Errorf("loaded register holds 0x%X, want 0xBEEF", v)
	}
}
