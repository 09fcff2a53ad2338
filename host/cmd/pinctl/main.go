//go:build linux

// pinctl drives BCM2711 GPIO lines from a Linux host: through the local
// /dev/gpiomem mapping by default, or through a board-side register monitor
// on a serial link when -device is given.
//
// The driver's configured-function state lives in the process, so set and
// clear configure the pin as an output before driving it; a fresh process
// always starts with every pin unconfigured.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"bcmgpio/core"
	"bcmgpio/host/gpiomem"
	"bcmgpio/host/remote"
	"bcmgpio/host/serial"
)

var (
	device = flag.String("device", "", "Serial device of a register monitor (empty = local /dev/gpiomem)")
	baud   = flag.Int("baud", 115200, "Baud rate for the serial device")
)

var functions = map[string]core.PinFunction{
	"input":  core.FuncInput,
	"output": core.FuncOutput,
	"alt0":   core.FuncAlt0,
	"alt1":   core.FuncAlt1,
	"alt2":   core.FuncAlt2,
	"alt3":   core.FuncAlt3,
	"alt4":   core.FuncAlt4,
	"alt5":   core.FuncAlt5,
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pinctl [flags] <command> <pin> [arg]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  func <pin> <input|output|alt0..alt5>  select the pin function")
	fmt.Fprintln(os.Stderr, "  set <pin>                             drive the pin high")
	fmt.Fprintln(os.Stderr, "  clear <pin>                           drive the pin low")
	fmt.Fprintln(os.Stderr, "  read <pin>                            print the pin level (0 or 1)")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
	}

	n, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || n >= core.NumPins {
		fmt.Fprintf(os.Stderr, "pinctl: %q is not a BCM2711 GPIO number (0-%d)\n", args[1], core.NumPins-1)
		os.Exit(1)
	}

	rio, closeBackend, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pinctl: %v\n", err)
		os.Exit(1)
	}
	defer closeBackend()

	core.SetRegisterIO(rio)
	pin := core.Lookup(uint32(n))

	switch args[0] {
	case "func":
		if len(args) < 3 {
			usage()
		}
		f, ok := functions[args[2]]
		if !ok {
			fmt.Fprintf(os.Stderr, "pinctl: unknown function %q\n", args[2])
			os.Exit(1)
		}
		pin.FuncSelect(f)

	case "set":
		pin.FuncSelect(core.FuncOutput)
		err = pin.Set()

	case "clear":
		pin.FuncSelect(core.FuncOutput)
		err = pin.Clear()

	case "read":
		fmt.Println(pin.Read())

	default:
		usage()
	}

	if err == nil {
		err = backendErr(rio)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pinctl: %v\n", err)
		os.Exit(1)
	}
}

// openBackend picks the register backend from the flags.
func openBackend() (core.RegisterIO, func() error, error) {
	if *device != "" {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		port, err := serial.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		client := remote.NewClient(port)
		return client, client.Close, nil
	}

	mem, err := gpiomem.Open()
	if err != nil {
		return nil, nil, err
	}
	return mem, mem.Close, nil
}

// backendErr surfaces latched link errors from the remote backend; the
// local mapping has none.
func backendErr(rio core.RegisterIO) error {
	if c, ok := rio.(*remote.Client); ok {
		return c.Err()
	}
	return nil
}
