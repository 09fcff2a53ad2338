package core

// The registry is the only process-wide state in the driver: one handle per
// line, built once before main runs. Its shape never changes afterwards;
// only each pin's configured function mutates.
var pins [NumPins]Pin

func init() {
	for i := range pins {
		pins[i] = NewPin(uint32(i))
	}
}

// Lookup returns the registry handle for line n. Pin-number validity is a
// construction-time concern, so an out-of-range n is a programming error
// and panics rather than returning an error.
func Lookup(n uint32) *Pin {
	if n >= NumPins {
		panic("GPIO pin number out of range")
	}
	return &pins[n]
}
