package core

// Level is the logic level of a GPIO line.
type Level uint8

const (
	Low  Level = 0
	High Level = 1
)

// Pin represents one physical GPIO line. The pin number and the four
// register addresses are fixed at construction; only the configured
// function mutates, and only through FuncSelect. There is no way back to
// the unconfigured state.
type Pin struct {
	number   uint32
	function PinFunction
	regs     RegisterAddresses
}

// NewPin constructs the handle for one line. Register addresses are a pure
// function of the pin number; nothing validates them at call time.
func NewPin(number uint32) Pin {
	return Pin{
		number:   number,
		function: FuncUnset,
		regs:     ResolveAddresses(number),
	}
}

// Number returns the BCM pin number.
func (p *Pin) Number() uint32 {
	return p.number
}

// Function returns the currently configured function, or FuncUnset if
// FuncSelect has never been called on this pin.
func (p *Pin) Function() PinFunction {
	return p.function
}

// FuncSelect routes the pin to function f by OR-ing f's code into the 3-bit
// field at (number%10)*3 of the pin's GPFSELn word. It always succeeds and
// may be called again to re-select.
//
// The write is OR-only: switching away from a function whose code shares
// bits with the new one can leave stale bits set in the field. That is the
// hardware register packing surfaced as-is; callers needing a clean field
// must clear it themselves.
func (p *Pin) FuncSelect(f PinFunction) {
	rio := MustRegisterIO()
	shift := p.number % FSelPinsPerReg * FSelBitsPerPin
	rio.Write32(p.regs.FuncSelect, rio.Read32(p.regs.FuncSelect)|f.Code()<<shift)
	p.function = f
}

// Set drives the line high by OR-ing the pin's bit into its GPSETn word.
// The guard runs fully before any register access: on failure no read or
// write happens. ALT functions pass the guard; some alternate functions
// legitimately need the set/clear registers poked.
func (p *Pin) Set() error {
	switch p.function {
	case FuncUnset:
		return ErrFunctionNotSet
	case FuncInput:
		return ErrIncorrectFunction
	}
	rio := MustRegisterIO()
	rio.Write32(p.regs.Set, rio.Read32(p.regs.Set)|p.mask())
	return nil
}

// Clear drives the line low. Same guard and failure conditions as Set,
// writing the pin's GPCLRn word instead.
func (p *Pin) Clear() error {
	switch p.function {
	case FuncUnset:
		return ErrFunctionNotSet
	case FuncInput:
		return ErrIncorrectFunction
	}
	rio := MustRegisterIO()
	rio.Write32(p.regs.Clear, rio.Read32(p.regs.Clear)|p.mask())
	return nil
}

// Read returns the current level of the line from its GPLEVn word. The
// level register reports physical line state regardless of the configured
// function, so Read has no guard and cannot fail.
func (p *Pin) Read() Level {
	return Level(MustRegisterIO().Read32(p.regs.Level) >> (p.number % 32) & 1)
}

func (p *Pin) mask() uint32 {
	return 1 << (p.number % 32)
}
