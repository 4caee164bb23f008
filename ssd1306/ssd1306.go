// Package ssd1306 controls a SSD1306 OLED display via I2C.
//
// The SSD1306 is a 1-bit monochrome OLED controller driving panels up to
// 128x64 pixels, addressed in pages of 8 pixel rows. It consumes the
// packed VerticalLSB buffer produced by the mgui orchestrators directly.
//
// See the examples for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"

	"github.com/karakirimu/mgui/image1bit"
)

// Command bytes, see the SSD1306 datasheet.
const (
	cmdSetMemMode       = 0x20
	cmdSetColAddr       = 0x21
	cmdSetPageAddr      = 0x22
	cmdSetHorizScroll   = 0x26
	cmdDeactivateScroll = 0x2E
	cmdActivateScroll   = 0x2F
	cmdSetStartLine     = 0x40
	cmdSetContrast      = 0x81
	cmdSetChargePump    = 0x8D
	cmdSetSegRemap      = 0xA0
	cmdSetEntireOn      = 0xA4
	cmdSetNormDisp      = 0xA6
	cmdSetInvDisp       = 0xA7
	cmdSetMuxRatio      = 0xA8
	cmdSetDispOff       = 0xAE
	cmdSetDispOn        = 0xAF
	cmdSetComOutDir     = 0xC0
	cmdSetDispOffset    = 0xD3
	cmdSetDispClkDiv    = 0xD5
	cmdSetPrecharge     = 0xD9
	cmdSetComPinCfg     = 0xDA
	cmdSetVComDesel     = 0xDB
)

// Control byte prefixes for the I2C framing.
const (
	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// DefaultAddr is the common I2C address of SSD1306 modules.
const DefaultAddr = 0x3C

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels.
	W int // Width (default: 128, must be 1..128)
	H int // Height (default: 64, must be a multiple of 8, up to 64)

	// Addr is the I2C address (default: 0x3C).
	Addr uint16

	// Rotated flips the panel 180 degrees.
	Rotated bool

	// Optional hardware reset pin (nil if not wired).
	RST gpio.PinIO
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	c   i2c.Dev
	rst gpio.PinIO

	rect  image.Rectangle
	pages int

	buffer []byte
	next   *image1bit.VerticalLSB

	halted bool
}

// NewI2C creates a new SSD1306 device on an I2C bus.
//
// opts can be nil to use defaults (128x64 at address 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	}
	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H > 64 || opts.H%8 != 0 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}

	d := &Dev{
		c:      i2c.Dev{Bus: b, Addr: addr},
		rst:    opts.RST,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		pages:  opts.H / 8,
		buffer: make([]byte, opts.W*opts.H/8),
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided).
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	segRemap, comOutDir := byte(cmdSetSegRemap|0x01), byte(cmdSetComOutDir|0x08)
	if opts.Rotated {
		segRemap = cmdSetSegRemap
		comOutDir = cmdSetComOutDir
	}
	comPinCfg := byte(0x12)
	if opts.H <= 32 {
		comPinCfg = 0x02
	}

	cmds := []byte{
		cmdSetDispOff,
		cmdSetMemMode, 0x00, // Horizontal addressing
		cmdSetStartLine,
		segRemap,
		cmdSetMuxRatio, byte(d.rect.Dy() - 1),
		comOutDir,
		cmdSetDispOffset, 0x00,
		cmdSetComPinCfg, comPinCfg,
		cmdSetDispClkDiv, 0x80,
		cmdSetPrecharge, 0xF1,
		cmdSetVComDesel, 0x30,
		cmdSetContrast, 0xFF,
		cmdSetEntireOn,
		cmdSetNormDisp,
		cmdSetChargePump, 0x14, // Enable internal charge pump
		cmdDeactivateScroll,
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM, then turn the panel on.
	if err := d.writeFrame(make([]byte, len(d.buffer))); err != nil {
		return err
	}
	return d.sendCommand(cmdSetDispOn)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes under one control prefix.
func (d *Dev) sendCommands(cmds []byte) error {
	return d.c.Tx(append([]byte{ctrlCommand}, cmds...), nil)
}

// sendData sends a slice of GDDRAM data bytes.
func (d *Dev) sendData(data []byte) error {
	return d.c.Tx(append([]byte{ctrlData}, data...), nil)
}

// writeFrame sets the full addressing window and transfers one frame.
func (d *Dev) writeFrame(pixels []byte) error {
	cmds := []byte{
		cmdSetColAddr, 0, byte(d.rect.Dx() - 1),
		cmdSetPageAddr, 0, byte(d.pages - 1),
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in the VerticalLSB page
// layout. The data must be exactly width*height/8 bytes; mgui's LCD()
// buffer has this shape.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	if err := d.writeFrame(pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display. The dst rectangle is clipped to
// the display bounds; src is converted to 1bpp if necessary.
//
// It implements the display.Drawer interface from periph.io.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full-frame VerticalLSB source needs no conversion.
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			if err := d.writeFrame(srcImg.Pix); err != nil {
				return err
			}
			copy(d.buffer, srcImg.Pix)
			return nil
		}
	}

	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
		copy(d.next.Pix, d.buffer)
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)
	if err := d.writeFrame(d.next.Pix); err != nil {
		return err
	}
	copy(d.buffer, d.next.Pix)
	return nil
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{cmdSetContrast, contrast})
}

// Invert inverts the display colors (black becomes white and vice
// versa) without touching the buffer.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(cmdSetNormDisp)
	if invert {
		mode = cmdSetInvDisp
	}
	return d.sendCommand(mode)
}

// ScrollSpeed defines the horizontal scroll frame interval.
type ScrollSpeed byte

// Scroll frame intervals (in display refresh cycles).
const (
	Speed2Frames   ScrollSpeed = 0x07
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts hardware horizontal scrolling of the page
// range [startPage, endPage]. If right is true the content scrolls
// right, otherwise left.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if int(startPage) >= d.pages || int(endPage) >= d.pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}
	scrollCmd := byte(cmdSetHorizScroll) // Right
	if !right {
		scrollCmd |= 0x01 // Left
	}
	return d.sendCommands([]byte{
		scrollCmd,
		0x00, // Dummy byte
		startPage,
		byte(speed),
		endPage,
		0x00, 0xFF, // Dummy bytes
		cmdActivateScroll,
	})
}

// StopScroll stops all scrolling. Display RAM may need to be rewritten
// afterwards, per the datasheet.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommand(cmdDeactivateScroll)
}

// Halt powers off the display. After calling Halt the device does not
// respond to further drawing until re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(cmdSetDispOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
