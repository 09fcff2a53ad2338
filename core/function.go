package core

// PinFunction identifies what a GPIO line is routed to: generic input,
// generic output, or one of six alternate peripheral functions. FuncUnset is
// the construction-time sentinel; it is never a valid argument to
// FuncSelect.
type PinFunction uint8

const (
	FuncUnset PinFunction = iota
	FuncInput
	FuncOutput
	FuncAlt0
	FuncAlt1
	FuncAlt2
	FuncAlt3
	FuncAlt4
	FuncAlt5
)

// Code returns the 3-bit function-select encoding from the BCM2711
// datasheet. Note the ALT codes do not follow their numeric order.
func (f PinFunction) Code() uint32 {
	switch f {
	case FuncInput:
		return 0b000
	case FuncOutput:
		return 0b001
	case FuncAlt0:
		return 0b100
	case FuncAlt1:
		return 0b101
	case FuncAlt2:
		return 0b110
	case FuncAlt3:
		return 0b111
	case FuncAlt4:
		return 0b011
	case FuncAlt5:
		return 0b010
	}
	return 0
}

func (f PinFunction) String() string {
	switch f {
	case FuncUnset:
		return "unset"
	case FuncInput:
		return "input"
	case FuncOutput:
		return "output"
	case FuncAlt0:
		return "alt0"
	case FuncAlt1:
		return "alt1"
	case FuncAlt2:
		return "alt2"
	case FuncAlt3:
		return "alt3"
	case FuncAlt4:
		return "alt4"
	case FuncAlt5:
		return "alt5"
	}
	return "unknown"
}
