// Package simio provides an in-memory register backend for tests and for
// developing against the driver on a machine without the hardware. It keeps
// a sparse register map plus per-address access counters so tests can
// assert not just final register values but exactly how many accesses an
// operation performed.
package simio

// Sim implements core.RegisterIO over a map. The zero value is not usable;
// call New.
type Sim struct {
	regs   map[uint32]uint32
	reads  map[uint32]int
	writes map[uint32]int
}

// New returns an empty simulated register file. All registers read as zero
// until written.
func New() *Sim {
	return &Sim{
		regs:   make(map[uint32]uint32),
		reads:  make(map[uint32]int),
		writes: make(map[uint32]int),
	}
}

// Read32 returns the register value and counts the access.
func (s *Sim) Read32(addr uint32) uint32 {
	s.reads[addr]++
	return s.regs[addr]
}

// Write32 stores the register value and counts the access.
func (s *Sim) Write32(addr uint32, val uint32) {
	s.writes[addr]++
	s.regs[addr] = val
}

// Load seeds a register without counting an access. Use it to inject level
// register contents before exercising a read path.
func (s *Sim) Load(addr uint32, val uint32) {
	s.regs[addr] = val
}

// Reg returns the current register value without counting an access.
func (s *Sim) Reg(addr uint32) uint32 {
	return s.regs[addr]
}

// Reads returns how many Read32 calls hit addr.
func (s *Sim) Reads(addr uint32) int {
	return s.reads[addr]
}

// Writes returns how many Write32 calls hit addr.
func (s *Sim) Writes(addr uint32) int {
	return s.writes[addr]
}
