package core

// RegisterIO is the access path to the mapped GPIO registers. Backends
// translate an absolute register address into whatever their mapping needs:
// a volatile load/store on bare metal, an index into an mmap'd word slice on
// Linux, a wire request to a remote monitor, or plain memory in tests.
//
// Implementations must perform exactly one access per call and must not
// cache values between calls. No locking happens at this layer; a
// read-modify-write through RegisterIO is not atomic with respect to other
// accessors of the same word.
type RegisterIO interface {
	// Read32 returns the current value of the 32-bit register at addr.
	Read32(addr uint32) uint32

	// Write32 stores val to the 32-bit register at addr.
	Write32(addr uint32, val uint32)
}

// Global backend used by all pin operations.
var registerIO RegisterIO

// SetRegisterIO is called by backend code to register its implementation.
func SetRegisterIO(rio RegisterIO) {
	registerIO = rio
}

// MustRegisterIO returns the registered backend or panics if missing.
func MustRegisterIO() RegisterIO {
	if registerIO == nil {
		panic("GPIO register backend not configured")
	}
	return registerIO
}
