// This file is part of GopherCoCo.
//
// GopherCoCo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCoCo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCoCo.  If not, see <https://www.gnu.org/licenses/>.

package gime_test

import (
	"testing"

	"github.com/colourclash/gophercoco/hardware/gime"
	"github.com/colourclash/gophercoco/test"
)

// the sixteen colour, 160 byte bitmap configuration fills the active span
// exactly: two source pixels per byte, replicated twice.
func pokeBitmap16(tc *testChip) {
	tc.poke(gime.AddrRegisters+0x8, 0x80)
	tc.poke(gime.AddrRegisters+0x9, 0x1e)
	for i := uint16(0); i < 16; i++ {
		tc.poke(gime.AddrPalette+i, uint8(0x20+i))
	}
}

func TestBitmapLine(t *testing.T) {
	tc := newTestChip(gime.Variant1986)
	pokeBitmap16(tc)
	tc.poke(gime.AddrRegisters+0xa, 0x2a)

	tc.ports.ram[0] = 0x12
	tc.ports.ram[159] = 0xff
	tc.ports.ram[160] = 0x34

	tc.runLines(linesToActiveArea + 2)
	test.Equate(t, len(tc.ports.lines), 2)

	line := tc.ports.lines[0]
	test.Equate(t, len(line), gime.LineWidth)

	// borders carry the border register value
	for _, i := range []int{0, 63, 704, 767} {
		test.Equate(t, line[i], uint8(0x2a))
	}

	// first byte: high nibble then low nibble, two output pixels each
	test.Equate(t, line[64], uint8(0x21))
	test.Equate(t, line[65], uint8(0x21))
	test.Equate(t, line[66], uint8(0x22))
	test.Equate(t, line[67], uint8(0x22))

	// last byte of the row lands at the right edge of the active span
	test.Equate(t, line[700], uint8(0x2f))
	test.Equate(t, line[703], uint8(0x2f))

	// the one line row height advances the fetch address every line
	test.Equate(t, tc.ports.lines[1][64], uint8(0x23))
}

func TestMidLinePaletteChange(t *testing.T) {
	tc := newTestChip(gime.Variant1986)
	pokeBitmap16(tc)
	tc.poke(gime.AddrPalette, 0x11)

	// run to the start of the first active line, then part way along it
	tc.runLines(linesToActiveArea)
	tc.clk.Advance(448)
	tc.sched.RunDue()

	// recolouring palette entry zero must not repaint pixels already put
	// out. writing the same value twice checks the flush is idempotent
	tc.poke(gime.AddrPalette, 0x22)
	tc.poke(gime.AddrPalette, 0x22)

	tc.runLines(1)
	test.Equate(t, len(tc.ports.lines), 1)

	line := tc.ports.lines[0]
	for i := 64; i < 320; i++ {
		test.Equate(t, line[i], uint8(0x11))
	}
	for i := 320; i < 704; i++ {
		test.Equate(t, line[i], uint8(0x22))
	}
}

func TestTextAttributes(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	// eight line rows, 32 columns, character/attribute cell pairs
	tc.poke(gime.AddrRegisters+0x8, 0x03)
	tc.poke(gime.AddrRegisters+0x9, 0x01)
	tc.poke(gime.AddrPalette+0, 0x10)
	tc.poke(gime.AddrPalette+7, 0x17)
	tc.poke(gime.AddrPalette+8, 0x18)
	tc.poke(gime.AddrPalette+9, 0x19)

	tc.ports.ram[0] = 0x20 // space
	tc.ports.ram[1] = 0x0f
	tc.ports.ram[2] = 0x00 // @
	tc.ports.ram[3] = 0x00
	tc.ports.ram[4] = 0x20 // space, underlined
	tc.ports.ram[5] = 0x40

	tc.runLines(linesToActiveArea + 8)

	// attribute colours: background from the low three bits, foreground
	// from the next three
	row0 := tc.ports.lines[0]
	for i := 64; i < 80; i++ {
		test.Equate(t, row0[i], uint8(0x17))
	}

	// '@' glyph, top row: five set bits framed by clear ones
	test.Equate(t, row0[80], uint8(0x10))
	test.Equate(t, row0[81], uint8(0x10))
	for i := 82; i < 92; i++ {
		test.Equate(t, row0[i], uint8(0x18))
	}
	test.Equate(t, row0[92], uint8(0x10))

	// underline fills the last line of the row and no other
	test.Equate(t, row0[96], uint8(0x10))
	row7 := tc.ports.lines[7]
	for i := 96; i < 112; i++ {
		test.Equate(t, row7[i], uint8(0x18))
	}
}

func TestTextBlink(t *testing.T) {
	tc := newTestChip(gime.Variant1987)

	tc.poke(gime.AddrRegisters+0x8, 0x03)
	tc.poke(gime.AddrRegisters+0x9, 0x01)
	tc.poke(gime.AddrPalette+0, 0x10)
	tc.poke(gime.AddrPalette+8, 0x18)

	tc.ports.ram[0] = 0x00 // @
	tc.ports.ram[1] = 0x80 // blink attribute

	// a long fast timer period toggles the blink flip-flop once before
	// the active area begins
	tc.poke(gime.AddrRegisters+0x1, 0x20)
	tc.poke(gime.AddrRegisters+0x4, 0x0f)
	tc.poke(gime.AddrRegisters+0x5, 0xff)

	tc.runLines(linesToActiveArea + 1)
	test.Equate(t, tc.chip.Blink(), true)

	// in the blink phase the foreground collapses to the background
	line := tc.ports.lines[0]
	for i := 64; i < 80; i++ {
		test.Equate(t, line[i], uint8(0x10))
	}
}

func TestLegacyText(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	tc.poke(gime.AddrRegisters+0x0, 0x80)
	tc.poke(gime.AddrPalette+1, 0x21)
	tc.poke(gime.AddrPalette+7, 0x27)
	tc.poke(gime.AddrPalette+12, 0x2c)
	tc.poke(gime.AddrPalette+13, 0x0d)

	tc.ports.ram[0] = 0xff // semigraphics, all quadrants lit
	tc.ports.ram[1] = 0x20 // space
	tc.ports.ram[2] = 0x40 // inverse @
	tc.ports.ram[3] = 0x9c // semigraphics, top quadrants only

	tc.runLines(linesToActiveArea + 12)

	row0 := tc.ports.lines[0]
	test.Equate(t, len(row0), gime.LineWidth)

	// fully lit semigraphics cell
	for i := 64; i < 80; i++ {
		test.Equate(t, row0[i], uint8(0x27))
	}

	// the glyph rows are blank at the top of the twelve line cell
	for i := 80; i < 96; i++ {
		test.Equate(t, row0[i], uint8(0x0d))
	}

	// inverse video swaps ink and paper
	for i := 96; i < 112; i++ {
		test.Equate(t, row0[i], uint8(0x2c))
	}

	// quadrant semigraphics: lit on the top half of the cell, paper on
	// the bottom half
	test.Equate(t, row0[112], uint8(0x21))
	row6 := tc.ports.lines[6]
	test.Equate(t, row6[112], uint8(0x0d))
}

func TestLegacyTextColourSet(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	tc.poke(gime.AddrRegisters+0x0, 0x80)
	tc.poke(gime.AddrPalette+13, 0x0d)
	tc.poke(gime.AddrPalette+15, 0x2f)

	tc.ports.ram[0] = 0x20 // space

	// the colour set select bit of the external mode register routes the
	// legacy colours through the alternate palette entries
	tc.poke(gime.AddrVDGMode, 0x08)

	tc.runLines(linesToActiveArea + 1)

	line := tc.ports.lines[0]
	for i := 64; i < 80; i++ {
		test.Equate(t, line[i], uint8(0x2f))
	}
}

func TestLegacyGraphics(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	tc.poke(gime.AddrRegisters+0x0, 0x80)
	tc.poke(gime.AddrVDGMode, 0x80)
	tc.poke(gime.AddrPalette+0, 0x10)
	tc.poke(gime.AddrPalette+1, 0x21)
	tc.poke(gime.AddrPalette+2, 0x32)
	tc.poke(gime.AddrPalette+3, 0x03)

	tc.ports.ram[0] = 0x1b // pixel pairs 00 01 10 11

	tc.runLines(linesToActiveArea + 3)

	line := tc.ports.lines[0]
	for i := 0; i < 4; i++ {
		test.Equate(t, line[64+i], uint8(0x10))
		test.Equate(t, line[68+i], uint8(0x21))
		test.Equate(t, line[72+i], uint8(0x32))
		test.Equate(t, line[76+i], uint8(0x03))
	}

	// three scanlines per source row
	test.Equate(t, tc.ports.lines[2][64], uint8(0x10))
	test.Equate(t, tc.ports.lines[2][76], uint8(0x03))
}

func TestLegacyBankBit(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	tc.poke(gime.AddrRegisters+0x0, 0x80)
	tc.poke(gime.AddrPalette+7, 0x27)

	// display offset bit F0 and the companion chip's bank bit combine
	// into the legacy video base address
	tc.poke(gime.AddrSAM+0x07, 0)
	tc.chip.SetExternalBankRegister(0x01)

	tc.ports.ram[0x10200] = 0xff

	// the base address is captured into the line address at the end of
	// the field. the first field still shows the old base
	tc.runLines(302)

	test.Equate(t, tc.ports.lines[0][64], uint8(0x00))
	line := tc.ports.lines[192]
	for i := 64; i < 80; i++ {
		test.Equate(t, line[i], uint8(0x27))
	}
}

func TestVirtualWidth(t *testing.T) {
	tc := newTestChip(gime.Variant1986)
	pokeBitmap16(tc)

	// virtual width: fetches wrap inside a fixed 256 byte window and the
	// row stride is pinned to the window size
	tc.poke(gime.AddrRegisters+0xf, 0xd0)

	tc.ports.ram[0x00] = 0x34
	tc.ports.ram[0xa0] = 0x12
	tc.ports.ram[0x1a0] = 0x56

	tc.runLines(linesToActiveArea + 2)

	// the horizontal offset starts the fetch mid window
	line := tc.ports.lines[0]
	test.Equate(t, line[64], uint8(0x21))
	test.Equate(t, line[66], uint8(0x22))

	// the 97th byte of the row has wrapped to the bottom of the window
	test.Equate(t, line[448], uint8(0x23))
	test.Equate(t, line[450], uint8(0x24))

	// the next line fetches from the next window
	test.Equate(t, tc.ports.lines[1][64], uint8(0x25))
}
