//go:build linux

// Package gpiomem exposes the BCM2711 GPIO register block mapped from
// /dev/gpiomem as a core.RegisterIO backend. The kernel sets the mapping up
// uncached, and unlike /dev/mem it needs no root, only membership in the
// gpio group.
package gpiomem

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"bcmgpio/core"
)

const (
	device = "/dev/gpiomem"
	mapLen = 4096
)

// Mem is the mapped register block. It performs no locking: a
// read-modify-write through it is not atomic against other processes or
// threads touching the same word.
type Mem struct {
	buf   []byte
	words []uint32
}

// Open maps the GPIO register block. Close must be called to release the
// mapping.
func Open() (*Mem, error) {
	f, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("gpiomem: %w", err)
	}
	defer f.Close()

	buf, err := unix.Mmap(int(f.Fd()), 0, mapLen,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("gpiomem: mmap: %w", err)
	}

	return &Mem{
		buf:   buf,
		words: unsafe.Slice((*uint32)(unsafe.Pointer(&buf[0])), mapLen/4),
	}, nil
}

// /dev/gpiomem maps the block starting at its hardware base, so an absolute
// register address translates to a word index relative to core.GPIOBase.
func (m *Mem) index(addr uint32) uint32 {
	return (addr - core.GPIOBase) / 4
}

// Read32 returns the register at addr.
func (m *Mem) Read32(addr uint32) uint32 {
	return m.words[m.index(addr)]
}

// Write32 stores val to the register at addr.
func (m *Mem) Write32(addr uint32, val uint32) {
	m.words[m.index(addr)] = val
}

// Close unmaps the register block. The Mem must not be used afterwards.
func (m *Mem) Close() error {
	buf := m.buf
	m.buf = nil
	m.words = nil
	return unix.Munmap(buf)
}
