// Package lcd drives a 16x2 HD44780 character display behind a PCF8574
// I2C backpack, the common "1602" module.
package lcd

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Display geometry for the 1602 class of modules this package targets.
const (
	Columns = 16
	Rows    = 2
)

// Backpack addresses probed in order. 0x27 is the usual PCF8574, 0x3F
// the PCF8574A variant.
var addrs = []uint8{0x27, 0x3F}

// ErrNotFound means no display acknowledged on any probed address. The
// caller is expected to carry on without a display rather than halt.
var ErrNotFound = errors.New("lcd: no display found on addresses 0x27, 0x3F")

// Screen is a connected, configured display. It satisfies the
// word-wrapping renderer's Surface. Driver errors are discarded: there is
// nothing useful to do with a failed LCD write at this layer.
type Screen struct {
	dev hd44780i2c.Device
}

// Probe scans the common backpack addresses on bus and configures the
// first device that acknowledges.
func Probe(bus drivers.I2C) (*Screen, error) {
	for _, addr := range addrs {
		// Address-only transaction: an ack means something is
		// listening there.
		if err := bus.Tx(uint16(addr), nil, nil); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, addr)
		err := dev.Configure(hd44780i2c.Config{
			Width:  Columns,
			Height: Rows,
		})
		if err != nil {
			continue
		}
		return &Screen{dev: dev}, nil
	}
	return nil, ErrNotFound
}

func (s *Screen) Clear() {
	s.dev.ClearDisplay()
}

func (s *Screen) SetCursor(col, row uint8) {
	s.dev.SetCursor(col, row)
}

func (s *Screen) Write(p []byte) {
	s.dev.Print(p)
}

// Status replaces the whole display with two fixed lines, each truncated
// to the display width. Meant for short mode/state readouts where
// wrapping would be noise.
func (s *Screen) Status(line1, line2 []byte) {
	s.dev.ClearDisplay()
	s.dev.SetCursor(0, 0)
	s.dev.Print(clip(line1))
	s.dev.SetCursor(0, 1)
	s.dev.Print(clip(line2))
}

func clip(p []byte) []byte {
	if len(p) > Columns {
		return p[:Columns]
	}
	return p
}
