// Package monitor implements the board-side register monitor: a responder
// that executes register read/write requests arriving over a byte stream.
// It is the usual bring-up path for the chip — a UART monitor on the board,
// a host poking registers remotely — and runs against any core.RegisterIO,
// so it works identically over real MMIO and a simulated register file.
package monitor

import (
	"io"

	"bcmgpio/core"
	"bcmgpio/protocol"
)

const readChunk = 64

// Monitor serves register-access requests from a stream. Not safe for
// concurrent use; run one Serve loop per stream.
type Monitor struct {
	rw      io.ReadWriter
	rio     core.RegisterIO
	in      *protocol.FifoBuffer
	payload *protocol.ScratchOutput
	frame   *protocol.ScratchOutput
	seq     uint8
}

// New creates a monitor answering requests from rw against rio.
func New(rw io.ReadWriter, rio core.RegisterIO) *Monitor {
	return &Monitor{
		rw:      rw,
		rio:     rio,
		in:      protocol.NewFifoBuffer(256),
		payload: protocol.NewScratchOutput(),
		frame:   protocol.NewScratchOutput(),
	}
}

// Serve processes requests until the stream ends. A clean EOF returns nil;
// transport errors are returned as-is. Malformed frames and unknown
// commands are dropped silently, matching the framing's resync model.
func (m *Monitor) Serve() error {
	buf := make([]byte, readChunk)
	for {
		n, err := m.rw.Read(buf)
		if n > 0 {
			m.in.Write(buf[:n])
			if werr := m.drain(); werr != nil {
				return werr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (m *Monitor) drain() error {
	for {
		payload, ok := protocol.DecodeFrame(m.in)
		if !ok {
			return nil
		}
		if err := m.handle(payload); err != nil {
			return err
		}
	}
}

func (m *Monitor) handle(payload []byte) error {
	data := payload
	cmd, err := protocol.DecodeVLQUint(&data)
	if err != nil {
		return nil
	}

	switch cmd {
	case protocol.CmdReadReg:
		addr, err := protocol.DecodeVLQUint(&data)
		if err != nil {
			return nil
		}
		m.payload.Reset()
		protocol.EncodeRegVal(m.payload, addr, m.rio.Read32(addr))
		return m.respond()

	case protocol.CmdWriteReg:
		addr, err := protocol.DecodeVLQUint(&data)
		if err != nil {
			return nil
		}
		val, err := protocol.DecodeVLQUint(&data)
		if err != nil {
			return nil
		}
		m.rio.Write32(addr, val)
		m.payload.Reset()
		protocol.EncodeAck(m.payload)
		return m.respond()
	}
	return nil
}

func (m *Monitor) respond() error {
	m.frame.Reset()
	protocol.EncodeFrame(m.frame, m.seq, m.payload.Result())
	m.seq++
	_, err := m.rw.Write(m.frame.Result())
	return err
}
