//go:build tinygo

// Package bcm2711 provides the bare-metal register backend: each access is
// one volatile load or store at the pin's absolute register address. The
// boot environment must have the peripheral region mapped uncached before
// Init is called.
package bcm2711

import (
	"runtime/volatile"
	"unsafe"

	"bcmgpio/core"
)

// MMIO implements core.RegisterIO with direct volatile accesses. It adds no
// fencing beyond what the device memory mapping provides.
type MMIO struct{}

// Read32 performs one volatile load.
func (MMIO) Read32(addr uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Get()
}

// Write32 performs one volatile store.
func (MMIO) Write32(addr uint32, val uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(addr))).Set(val)
}

// Init registers the backend. Call it before touching any pins.
func Init() {
	core.SetRegisterIO(MMIO{})
}
