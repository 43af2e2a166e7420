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

package gime

import (
	"github.com/colourclash/gophercoco/logger"
)

// Memory mapped blocks owned by the chip.
const (
	AddrRegisters = uint16(0xff90)
	AddrMMU       = uint16(0xffa0)
	AddrPalette   = uint16(0xffb0)
	AddrSAM       = uint16(0xffc0)

	// the external VDG mode register. not ours, but writes to it are
	// snooped because the legacy compatibility modes are shaped by it
	AddrVDGMode = uint16(0xff22)
)

// Register file indices, relative to AddrRegisters.
const (
	regINIT0  = 0x0
	regINIT1  = 0x1
	regIRQ    = 0x2
	regFIRQ   = 0x3
	regTimerH = 0x4
	regTimerL = 0x5
	regVMODE  = 0x8
	regVRES   = 0x9
	regBRDR   = 0xa
	regVSC    = 0xc
	regVOFF1  = 0xd
	regVOFF0  = 0xe
	regHOFF   = 0xf
)

// INIT0 bits.
const (
	initCompat     = uint8(0x80)
	initMMUEnable  = uint8(0x40)
	initIRQEnable  = uint8(0x20)
	initFIRQEnable = uint8(0x10)
	initVectorRAM  = uint8(0x08)
	initROMMap     = uint8(0x03)
)

// INIT1 bits.
const (
	initTimerFast = uint8(0x20)
	initTask      = uint8(0x01)
)

// VMODE bits.
const (
	vmodeBitmap      = uint8(0x80)
	vmodeBurstInvert = uint8(0x20)
	vmodeFieldRate50 = uint8(0x08)
	vmodeLinesPerRow = uint8(0x07)
)

// VRES fields.
const (
	vresLinesPerField = uint8(0x60)
	vresHorizontal    = uint8(0x1c)
	vresColourDepth   = uint8(0x03)
)

// HOFF bits.
const (
	hoffVirtualWidth = uint8(0x80)
)

// SAM bit indices within samBits. One toggle register pair per bit: the
// even address of the pair clears the bit, the odd address sets it.
const (
	samVDGModeShift = 0 // V0-V2
	samVDGModeMask  = uint16(0x0007)
	samOffsetShift  = 3 // F0-F6
	samOffsetMask   = uint16(0x03f8)
	samRate         = uint16(0x1000) // R1, address dependent speed is not modelled
	samMapType      = uint16(0x8000) // TY
)

// lines per character row, indexed by the LPR field of VMODE. the sentinel
// -1 means the row counter never advances
var linesPerRowTable = [8]int{1, 1, 2, 8, 9, 10, 11, -1}

// active area height, indexed by the LPF field of VRES. the sentinel -1 is
// the "infinite" height configuration
var activeLinesTable = [4]int{192, 200, 225, -1}

// top border height for each LPF configuration
var topBorderTable = [4]int{25, 21, 8, 0}

// fetched bytes per row in the bitmap modes, indexed by HRES
var bitmapBytesTable = [8]int{16, 20, 32, 40, 64, 80, 128, 160}

// character cells per row in the text modes, indexed by HRES
var textCellsTable = [8]int{32, 32, 40, 40, 64, 64, 80, 80}

// bits per pixel in the bitmap modes, indexed by CRES. the 11 configuration
// is undefined on real hardware and behaves as 4bpp
var bitmapDepthTable = [4]int{1, 2, 4, 4}

// writeRegister services a write to any address block owned by the chip.
// Writes that can recolour pixels already put out on the current scanline
// force a partial render first.
func (g *GIME) writeRegister(addr uint16, data uint8) {
	switch {
	case addr >= AddrMMU && addr < AddrMMU+16:
		g.mmu[addr-AddrMMU] = data & 0x3f
		return

	case addr >= AddrPalette && addr < AddrPalette+16:
		g.flushRender()
		g.palette[addr-AddrPalette] = data & 0x3f
		return

	case addr >= AddrSAM && addr < AddrSAM+32:
		g.writeSAM(addr)
		return
	}

	reg := int(addr - AddrRegisters)

	switch reg {
	case regINIT0, regVMODE, regVRES, regBRDR:
		g.flushRender()
	}

	g.regs[reg] = data
	if reg == regBRDR {
		g.border = data & 0x3f
	}

	g.updateDerived()

	switch reg {
	case regINIT0, regIRQ, regFIRQ:
		g.recomputeInterrupts()
	case regINIT1:
		g.timerSourceChanged()
	case regTimerH, regTimerL:
		g.timerReload()
	}
}

// readRegister services a read of the chip's register block. Most of the
// register file is write-only; reads of those addresses see the open bus.
func (g *GIME) readRegister(addr uint16) uint8 {
	switch int(addr - AddrRegisters) {
	case regIRQ:
		v := g.irqLatch
		g.irqLatch = 0
		g.recomputeInterrupts()
		return v

	case regFIRQ:
		v := g.firqLatch
		g.firqLatch = 0
		g.recomputeInterrupts()
		return v
	}

	logger.Logf("gime", "read of write-only register %#04x", addr)
	return OpenBusValue
}

// writeSAM services the SAM compatible toggle registers. The data bus plays
// no part; the address alone selects the bit and the direction.
func (g *GIME) writeSAM(addr uint16) {
	bit := uint16(1) << ((addr - AddrSAM) >> 1)

	// the VDG mode and display offset bits feed the legacy video modes
	if bit&(samVDGModeMask|samOffsetMask) != 0 {
		g.flushRender()
	}

	if addr&1 == 1 {
		g.samBits |= bit
	} else {
		g.samBits &^= bit
	}

	g.updateDerived()
}

// snoopVDGMode observes a write to the external video mode register.
func (g *GIME) snoopVDGMode(data uint8) {
	g.flushRender()
	g.vdgMode = data
	g.updateDerived()
}

// samOffset returns the legacy display offset bits F0-F6.
func (g *GIME) samOffset() uint32 {
	return uint32((g.samBits & samOffsetMask) >> samOffsetShift)
}

// compatBase is the video base address used by the legacy compatibility
// modes. The SAM offset bits supply the low address and the companion
// chip's bank register the top bit.
func (g *GIME) compatBase() uint32 {
	return (g.samOffset()<<9 | uint32(g.extBank&0x01)<<16) & VideoAddrMask
}

// updateDerived recomputes every value derived from the register file. It
// is called synchronously on every governing write, and again at the start
// of each scanline because mode bits can change mid-line.
//
// Ordering is load-bearing: callers that need a partial render must flush
// before the raw register is updated, never after.
func (g *GIME) updateDerived() {
	init0 := g.regs[regINIT0]
	g.compat = init0&initCompat != 0
	g.mmuEnabled = init0&initMMUEnable != 0
	g.irqEnabled = init0&initIRQEnable != 0
	g.firqEnabled = init0&initFIRQEnable != 0
	g.vectorRAM = init0&initVectorRAM != 0
	g.romMap = init0 & initROMMap

	init1 := g.regs[regINIT1]
	g.timerFast = init1&initTimerFast != 0
	if init1&initTask != 0 {
		g.taskOffset = 8
	} else {
		g.taskOffset = 0
	}

	g.irqEnable = g.regs[regIRQ] & 0x3f
	g.firqEnable = g.regs[regFIRQ] & 0x3f

	vmode := g.regs[regVMODE]
	g.bitmap = vmode&vmodeBitmap != 0
	g.burstInvert = vmode&vmodeBurstInvert != 0
	g.fieldRate50 = vmode&vmodeFieldRate50 != 0

	vres := g.regs[regVRES]
	lpf := int(vres&vresLinesPerField) >> 5
	hres := int(vres&vresHorizontal) >> 2
	cres := int(vres & vresColourDepth)

	g.vScroll = int(g.regs[regVSC] & 0x0f)

	hoff := g.regs[regHOFF]
	g.hven = hoff&hoffVirtualWidth != 0
	g.xOffset = uint32(hoff&0x7f) << 1

	if g.samBits&samRate != 0 {
		g.busCost = BusCycleFast
	} else {
		g.busCost = BusCycleSlow
	}

	if g.fieldRate50 {
		g.fieldDuration = FieldDuration50
		g.suppressLines = suppressedLines50
	} else {
		g.fieldDuration = FieldDuration60
		g.suppressLines = 0
	}

	// mode geometry
	if g.compat {
		g.legacyGfx = g.vdgMode&0x80 != 0
		g.nAA = compatActiveLines
		g.nTB = compatTopBorder
		g.cellsPerRow = 32
		g.cellBytes = 1
		// legacy modes fill a 512 pixel window inside the active span
		if g.legacyGfx {
			g.bpp = 2
			g.rep = 4
			g.linesPerRow = 3
		} else {
			g.bpp = 1
			g.rep = 2
			g.linesPerRow = compatTextRowHeight
		}
		g.rowStride = 32
	} else {
		g.legacyGfx = false
		g.nAA = activeLinesTable[lpf]
		g.nTB = topBorderTable[lpf]
		g.linesPerRow = linesPerRowTable[int(vmode&vmodeLinesPerRow)]

		if g.bitmap {
			g.bpp = bitmapDepthTable[cres]
			g.cellsPerRow = bitmapBytesTable[hres]
			g.cellBytes = 1
		} else {
			g.bpp = 1
			g.cellsPerRow = textCellsTable[hres]
			// odd CRES selects the two byte character/attribute cells
			if cres&0x01 == 0x01 {
				g.cellBytes = 2
			} else {
				g.cellBytes = 1
			}
		}

		// the widest legal configuration fills the active span exactly.
		// narrower ones are replicated up by the largest power of two that
		// still fits
		src := g.cellsPerRow * (8 / g.bpp)
		switch {
		case src <= 0:
			g.rep = 1
		case ActivePixels/src >= 8:
			g.rep = 8
		case ActivePixels/src >= 4:
			g.rep = 4
		case ActivePixels/src >= 2:
			g.rep = 2
		default:
			g.rep = 1
		}
	}

	if g.fieldRate50 {
		// doubled border allowance for the 50Hz field rate
		g.nTB += extraBorderLines50
	}

	g.cellWidth = (8 / g.bpp) * g.rep

	// clamp cells to the active span for configurations that would
	// overflow it, and pad configurations that fall short. either way the
	// three line phases always sum to the full line width
	if g.cellsPerRow*g.cellWidth > ActivePixels {
		g.cellsPerRow = ActivePixels / g.cellWidth
	}
	g.activePad = ActivePixels - g.cellsPerRow*g.cellWidth

	// row stride. the virtual width enable pins the stride regardless of
	// mode
	if g.hven {
		g.rowStride = virtualRowStride
	} else if !g.compat {
		g.rowStride = uint32(g.cellsPerRow * g.cellBytes)
	}

	if g.rep == 1 {
		g.borderOffset = borderPointHiRes
	} else {
		g.borderOffset = borderPointLoRes
	}
}
