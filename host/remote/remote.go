// Package remote provides a core.RegisterIO whose accesses execute on a
// remote board running the register monitor, reached over a serial link.
// It lets the same pin code drive real hardware from a development host.
//
// RegisterIO has no error returns by contract, so link failures are latched:
// after the first failure every Read32 returns zero and every Write32 is
// dropped until the caller checks Err.
package remote

import (
	"errors"
	"fmt"
	"io"

	"bcmgpio/host/serial"
	"bcmgpio/protocol"
)

// ErrTimeout is latched when the monitor stops answering.
var ErrTimeout = errors.New("remote: timed out waiting for monitor")

// maxIdleReads bounds how many empty reads await tolerates before latching
// ErrTimeout. With the port's read timeout this caps the wait per request.
const maxIdleReads = 50

// Client speaks the register protocol over a serial port. Not safe for
// concurrent use.
type Client struct {
	port serial.Port
	in   *protocol.FifoBuffer
	pay  *protocol.ScratchOutput
	frm  *protocol.ScratchOutput
	seq  uint8
	err  error
}

// Dial opens the serial device and returns a client ready for use.
func Dial(device string) (*Client, error) {
	port, err := serial.Open(serial.DefaultConfig(device))
	if err != nil {
		return nil, err
	}
	return NewClient(port), nil
}

// NewClient wraps an already-open port.
func NewClient(port serial.Port) *Client {
	return &Client{
		port: port,
		in:   protocol.NewFifoBuffer(256),
		pay:  protocol.NewScratchOutput(),
		frm:  protocol.NewScratchOutput(),
	}
}

// Err returns the first link error, or nil while the link is healthy.
func (c *Client) Err() error {
	return c.err
}

// Close closes the underlying port.
func (c *Client) Close() error {
	return c.port.Close()
}

// Read32 executes a register read on the board. Returns zero once a link
// error has been latched.
func (c *Client) Read32(addr uint32) uint32 {
	if c.err != nil {
		return 0
	}
	c.pay.Reset()
	protocol.EncodeReadReg(c.pay, addr)
	if !c.send() {
		return 0
	}

	payload, ok := c.await()
	if !ok {
		return 0
	}
	data := payload
	cmd, err := protocol.DecodeVLQUint(&data)
	if err != nil || cmd != protocol.RspRegVal {
		c.err = fmt.Errorf("remote: unexpected response %d to read", cmd)
		return 0
	}
	rspAddr, err := protocol.DecodeVLQUint(&data)
	if err != nil || rspAddr != addr {
		c.err = fmt.Errorf("remote: response for register 0x%X, want 0x%X", rspAddr, addr)
		return 0
	}
	val, err := protocol.DecodeVLQUint(&data)
	if err != nil {
		c.err = fmt.Errorf("remote: truncated read response: %w", err)
		return 0
	}
	return val
}

// Write32 executes a register write on the board. Dropped once a link error
// has been latched.
func (c *Client) Write32(addr uint32, val uint32) {
	if c.err != nil {
		return
	}
	c.pay.Reset()
	protocol.EncodeWriteReg(c.pay, addr, val)
	if !c.send() {
		return
	}

	payload, ok := c.await()
	if !ok {
		return
	}
	data := payload
	cmd, err := protocol.DecodeVLQUint(&data)
	if err != nil || cmd != protocol.RspAck {
		c.err = fmt.Errorf("remote: unexpected response %d to write", cmd)
	}
}

func (c *Client) send() bool {
	c.frm.Reset()
	protocol.EncodeFrame(c.frm, c.seq, c.pay.Result())
	c.seq++
	if _, err := c.port.Write(c.frm.Result()); err != nil {
		c.err = fmt.Errorf("remote: write: %w", err)
		return false
	}
	return true
}

// await reads from the port until one complete frame arrives or the link
// gives up.
func (c *Client) await() ([]byte, bool) {
	buf := make([]byte, 64)
	idle := 0
	for idle < maxIdleReads {
		if payload, ok := protocol.DecodeFrame(c.in); ok {
			return payload, true
		}
		n, err := c.port.Read(buf)
		if n > 0 {
			c.in.Write(buf[:n])
			idle = 0
			continue
		}
		if err != nil && err != io.EOF {
			c.err = fmt.Errorf("remote: read: %w", err)
			return nil, false
		}
		if err == io.EOF {
			c.err = fmt.Errorf("remote: %w", io.ErrUnexpectedEOF)
			return nil, false
		}
		idle++
	}
	c.err = ErrTimeout
	return nil, false
}
