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
	"github.com/colourclash/gophercoco/hardware/clock"
)

// Horizontal geometry, in master ticks from the falling edge of hsync.
const (
	// TicksPerScanline is the length of one scanline in ticks of the
	// master crystal.
	TicksPerScanline = 912

	// hsync is low for a fixed period at the start of every line
	hsyncLowTicks = 64

	// ticks from hsync fall to the first border pixel. one tick is one
	// pixel at the highest horizontal resolution
	displayStartTicks = 128

	// the horizontal border interrupt point. which of the two applies
	// depends on the horizontal resolution
	borderPointHiRes = 832
	borderPointLoRes = 800

	// field sync edges land this far into the line
	fsyncEdgeTicks = 32
)

// Line geometry, in output pixels.
const (
	// BorderPixels is the width of the left border and of the right border.
	BorderPixels = 64

	// ActivePixels is the width of the active span.
	ActivePixels = 640

	// LineWidth is the number of pixels rendered for every displayed line.
	LineWidth = 2*BorderPixels + ActivePixels

	// a little overscan slack at the end of the row buffer
	overscanSlack = 16
)

// Vertical geometry, in scanlines.
const (
	// FieldDuration60 and FieldDuration50 are the field lengths for the
	// two field rates.
	FieldDuration60 = 262
	FieldDuration50 = 312

	// field sync is held low for this many lines
	vsyncLines = 4

	// lines of vertical blanking before the top border begins
	vblankLines = 13

	// the field is cut short and field sync forced this many lines before
	// the nominal field end. empirically reverse engineered; resist the
	// temptation to make it zero
	earlyVSyncLines = 3

	// the 50Hz field rate carries a doubled border allowance, and the
	// first lines of the active area are rendered but never handed off
	extraBorderLines50 = 25
	suppressedLines50  = 25
)

// Legacy compatibility mode geometry.
const (
	compatActiveLines   = 192
	compatTopBorder     = 25
	compatTextRowHeight = 12
)

// row stride with the virtual width enable set, in bytes.
const virtualRowStride = 256

// VState is the vertical state of the video timing state machine.
type VState int

// The five vertical states. Transitions occur only at hsync fall
// boundaries, except the forced early wrap to StateVSync which is driven
// by an absolute line count independent of the current state.
const (
	StateVBlank VState = iota
	StateTopBorder
	StateActiveArea
	StateBottomBorder
	StateVSync
)

func (s VState) String() string {
	switch s {
	case StateVBlank:
		return "vblank"
	case StateTopBorder:
		return "top border"
	case StateActiveArea:
		return "active area"
	case StateBottomBorder:
		return "bottom border"
	case StateVSync:
		return "vsync"
	}
	return "unknown"
}

// hsyncFall is the recurring per-scanline event. Everything the chip does
// vertically happens here, in a fixed order.
func (g *GIME) hsyncFall() {
	lineStart := g.evHSyncFall.At

	// 1. close out the line just ended. only active area lines render and
	// only active area lines are handed to the display
	if g.vstate == StateActiveArea {
		g.renderTo(LineWidth)

		handoff := g.activeLine >= g.suppressLines

		// advance the row counter, and the video address on row wrap
		if g.linesPerRow > 0 {
			g.row++
			if g.row >= g.linesPerRow {
				g.row = 0
				g.lineAddr = (g.lineAddr + g.rowStride) & VideoAddrMask
			}
		}
		g.activeLine++

		if handoff {
			g.ports.RenderLine(g.pixels[:LineWidth], g.burstInvert)
		}
	}

	// 2. mode bits can change mid-line so the per-line constants are
	// recomputed at every line start
	g.updateDerived()

	// 3. sync goes low. everything later in the line is scheduled from
	// here
	g.ports.SignalHSync(false)
	g.lineStart = lineStart
	g.sched.ScheduleAt(&g.evHSyncRise, lineStart+hsyncLowTicks)
	g.sched.ScheduleAt(&g.evHSyncFall, lineStart+TicksPerScanline)
	g.sched.ScheduleAt(&g.evBorder, lineStart+clock.Tick(g.borderOffset))

	// 4. reset the per-line phase counters and the fetch pointer
	g.resetLinePhase()

	// 5. the field is cut short a fixed number of lines before its nominal
	// end, whatever state we are in
	g.fieldLine++
	if g.fieldLine >= g.fieldDuration {
		g.fieldLine = 0
	}
	g.scanline++

	if g.vstate != StateVSync && g.fieldLine == g.fieldDuration-earlyVSyncLines {
		g.vstate = StateVSync
		g.scanline = 0
		g.sched.ScheduleAt(&g.evFSyncFall, lineStart+fsyncEdgeTicks)
		return
	}

	// 6. state dispatch
	switch g.vstate {
	case StateVBlank:
		if g.scanline >= vblankLines {
			g.scanline = 0
			if g.nAA < 0 && g.inActive {
				// infinite active area height: the chip was still in the
				// active area when the field was cut short, so it resumes
				// there without a top border
				g.vstate = StateActiveArea
			} else {
				g.vstate = StateTopBorder
			}
		}

	case StateTopBorder:
		if g.scanline >= g.nTB {
			g.vstate = StateActiveArea
			g.scanline = 0
			g.activeLine = 0
			g.row = g.vScroll
			g.inActive = true
		}

	case StateActiveArea:
		if g.nAA >= 0 && g.scanline >= g.nAA {
			g.vstate = StateBottomBorder
			g.scanline = 0
			g.inActive = false
		}

	case StateBottomBorder:
		// no automatic exit. the forced early vsync ends the field

	case StateVSync:
		if g.scanline >= vsyncLines {
			g.sched.ScheduleAt(&g.evFSyncRise, lineStart+fsyncEdgeTicks)

			// reload the video address from the offset registers
			if g.compat {
				g.videoBase = g.compatBase()
			} else {
				g.videoBase = (uint32(g.regs[regVOFF1])<<11 | uint32(g.regs[regVOFF0])<<3) & VideoAddrMask
			}
			g.lineAddr = g.videoBase

			g.vstate = StateVBlank
			g.scanline = 0
			g.fieldCount++
		}
	}
}

func (g *GIME) hsyncRise() {
	g.ports.SignalHSync(true)
}

func (g *GIME) fsyncFall() {
	g.ports.SignalFSync(false)
}

func (g *GIME) fsyncRise() {
	g.ports.SignalFSync(true)
}

// borderPoint fires at the horizontal border interrupt point of every line,
// whatever the vertical state.
func (g *GIME) borderPoint() {
	g.raiseSource(IntHBorder)

	if !g.timerFast {
		g.timerTickSlow()
	}

	// the vertical border interrupt asserts on the last line of the
	// active area
	if g.vstate == StateActiveArea && g.nAA >= 0 && g.scanline == g.nAA-1 {
		g.raiseSource(IntVBorder)
	}
}
