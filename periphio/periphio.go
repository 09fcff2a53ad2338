// Package periphio adapts driver pins to the periph.io conn/v3 gpio
// interfaces, so applications built on that ecosystem can drive BCM2711
// lines through this driver. The adapter only covers what the register
// subset supports: function select, set/clear, and level. Pull resistors,
// edge detection and PWM are reported as unsupported.
package periphio

import (
	"errors"
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"bcmgpio/core"
)

var (
	errPull = errors.New("bcmgpio: pull resistors not supported")
	errEdge = errors.New("bcmgpio: edge detection not supported")
	errPWM  = errors.New("bcmgpio: pwm not supported")
)

// Pin wraps a core.Pin as a gpio.PinIO.
type Pin struct {
	p *core.Pin
}

var _ gpio.PinIO = (*Pin)(nil)

// Adapt wraps an existing pin handle.
func Adapt(p *core.Pin) *Pin {
	return &Pin{p: p}
}

// ByNumber wraps the registry handle for BCM line n.
func ByNumber(n uint32) *Pin {
	return &Pin{p: core.Lookup(n)}
}

// Name returns the conventional BCM name, e.g. "GPIO21".
func (p *Pin) Name() string {
	return "GPIO" + strconv.FormatUint(uint64(p.p.Number()), 10)
}

func (p *Pin) String() string {
	return p.Name()
}

// Number returns the BCM pin number.
func (p *Pin) Number() int {
	return int(p.p.Number())
}

// Function reports the configured function and, for plain input/output,
// the current level.
func (p *Pin) Function() string {
	switch f := p.p.Function(); f {
	case core.FuncUnset:
		return "Unset"
	case core.FuncInput:
		return "In/" + p.levelString()
	case core.FuncOutput:
		return "Out/" + p.levelString()
	default:
		return "ALT" + strconv.Itoa(int(f-core.FuncAlt0))
	}
}

func (p *Pin) levelString() string {
	if p.p.Read() == core.High {
		return "High"
	}
	return "Low"
}

// Halt is a no-op; there is nothing to stop.
func (p *Pin) Halt() error {
	return nil
}

// In configures the pin as an input. Only Float and PullNoChange are
// accepted since the driver does not touch the pull registers, and edge
// detection is not available.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if pull != gpio.Float && pull != gpio.PullNoChange {
		return errPull
	}
	if edge != gpio.NoEdge {
		return errEdge
	}
	p.p.FuncSelect(core.FuncInput)
	return nil
}

// Read returns the current line level. Callable in any state.
func (p *Pin) Read() gpio.Level {
	return gpio.Level(p.p.Read() == core.High)
}

// WaitForEdge always returns false; edge detection is not supported.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

// Pull returns PullNoChange; the pull state cannot be read through this
// register subset.
func (p *Pin) Pull() gpio.Pull {
	return gpio.PullNoChange
}

// DefaultPull returns PullNoChange; the boot-time pull is pin-specific and
// not visible here.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.PullNoChange
}

// Out configures the pin as an output on first use and drives the level.
func (p *Pin) Out(l gpio.Level) error {
	if p.p.Function() != core.FuncOutput {
		p.p.FuncSelect(core.FuncOutput)
	}
	if l == gpio.High {
		return p.p.Set()
	}
	return p.p.Clear()
}

// PWM is not supported on this register subset.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errPWM
}
