// Package core implements the BCM2711 GPIO register model: resolving a pin
// number to its register addresses, the per-pin function state machine, and
// the fixed registry of pin handles.
package core

// BCM2711 GPIO register block. The base is the physical address of the GPIO
// peripheral in the low-peripheral memory map; making it accessible (an
// identity mapping on bare metal, /dev/gpiomem on Linux) is the execution
// environment's job, not this package's.
const (
	// GPIOBase is the absolute address of the GPIO register block.
	GPIOBase uint32 = 0xFE200000

	fselOffset  uint32 = 0x00 // GPFSEL0: function select, 3 bits per pin
	setOffset   uint32 = 0x1C // GPSET0: output set, 1 bit per pin
	clearOffset uint32 = 0x28 // GPCLR0: output clear, 1 bit per pin
	levelOffset uint32 = 0x34 // GPLEV0: pin level, 1 bit per pin
)

// NumPins is the number of GPIO lines on the BCM2711 (GPIO0-GPIO57).
const NumPins = 58

const (
	// FSelBitsPerPin is the width of one function-select field.
	FSelBitsPerPin uint32 = 3

	// FSelPinsPerReg is the number of pins packed into one GPFSELn word.
	// Each word holds exactly 10 fields; the top 2 bits are reserved.
	FSelPinsPerReg uint32 = 10
)

// ComputeOffset returns the byte offset, from a register sub-block base, of
// the 32-bit word holding pin's field when the register dedicates bitsPerPin
// bits to each pin. Pure integer arithmetic with no failure mode: a word
// packs 32/bitsPerPin pins, so the word index is pin divided by that, times
// 4 bytes per word.
func ComputeOffset(pin, bitsPerPin uint32) uint32 {
	pinsPerWord := 32 / bitsPerPin
	return pin / pinsPerWord * 4
}

// RegisterAddresses holds the four absolute register addresses serving one
// pin. Fixed at construction, never revalidated.
type RegisterAddresses struct {
	FuncSelect uint32
	Set        uint32
	Clear      uint32
	Level      uint32
}

// ResolveAddresses computes the register addresses for a pin number. It only
// computes; it never touches memory.
func ResolveAddresses(pin uint32) RegisterAddresses {
	return RegisterAddresses{
		FuncSelect: GPIOBase + fselOffset + ComputeOffset(pin, FSelBitsPerPin),
		Set:        GPIOBase + setOffset + ComputeOffset(pin, 1),
		Clear:      GPIOBase + clearOffset + ComputeOffset(pin, 1),
		Level:      GPIOBase + levelOffset + ComputeOffset(pin, 1),
	}
}
