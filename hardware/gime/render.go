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

// text attribute bits, present when the two byte cell configuration is
// selected.
const (
	attrBlink     = uint8(0x80)
	attrUnderline = uint8(0x40)
)

// palette entries used by the legacy compatibility modes. the colour sets
// of the external video chip route through the top of the palette
const (
	compatInk      = 12
	compatPaper    = 13
	compatInkAlt   = 14
	compatPaperAlt = 15
)

// resetLinePhase resets the renderer's per-line counters and the fetch
// pointer for the current row.
func (g *GIME) resetLinePhase() {
	g.beamPos = 0
	g.leftRemaining = BorderPixels
	g.activeCells = g.cellsPerRow
	g.padRemaining = g.activePad
	g.rightRemaining = BorderPixels

	if g.hven {
		// virtual width keeps fetches inside a fixed 256 byte window
		g.fetchAddr = (g.lineAddr &^ 0xff) | ((g.lineAddr + g.xOffset) & 0xff)
	} else {
		g.fetchAddr = (g.lineAddr + g.xOffset) & VideoAddrMask
	}
}

// beamExtent converts the current tick into a pixel position on the line
// being rendered.
func (g *GIME) beamExtent() int {
	e := int(clock.Delta(g.clk.Current, g.lineStart)) - displayStartTicks
	if e < 0 {
		return 0
	}
	if e > LineWidth {
		return LineWidth
	}
	return e
}

// flushRender brings the rendered line up to the beam position. Called
// before any register write that could recolour pixels already put out on
// the current line.
func (g *GIME) flushRender() {
	if g.vstate != StateActiveArea {
		return
	}
	g.renderTo(g.beamExtent())
}

// renderTo renders the current line up to, and not beyond, the extent
// given in pixels. Repeated calls resume exactly where the previous call
// left off; a call with an extent at or behind the cursor is a no-op.
//
// The active phase advances in whole cells. A cell that would straddle the
// extent is deferred until a later call covers it, so nothing is ever
// written twice.
func (g *GIME) renderTo(extent int) {
	if g.vstate != StateActiveArea {
		return
	}
	if extent > LineWidth {
		extent = LineWidth
	}

	for g.beamPos < extent {
		switch {
		case g.leftRemaining > 0:
			n := g.leftRemaining
			if n > extent-g.beamPos {
				n = extent - g.beamPos
			}
			g.writeRun(g.border, n)
			g.leftRemaining -= n

		case g.activeCells > 0:
			if g.beamPos+g.cellWidth > extent {
				return
			}
			g.renderCell()
			g.activeCells--

		case g.padRemaining > 0:
			n := g.padRemaining
			if n > extent-g.beamPos {
				n = extent - g.beamPos
			}
			g.writeRun(g.border, n)
			g.padRemaining -= n

		case g.rightRemaining > 0:
			n := g.rightRemaining
			if n > extent-g.beamPos {
				n = extent - g.beamPos
			}
			g.writeRun(g.border, n)
			g.rightRemaining -= n

		default:
			return
		}
	}
}

// renderCell decodes and writes one cell of the active span.
func (g *GIME) renderCell() {
	switch {
	case g.compat && g.legacyGfx:
		g.renderLegacyGraphicsCell()
	case g.compat:
		g.renderLegacyTextCell()
	case g.bitmap:
		g.renderBitmapCell()
	default:
		g.renderTextCell()
	}
}

// fetchNext reads the next video byte for the current row and advances the
// fetch pointer.
func (g *GIME) fetchNext() uint8 {
	b := g.ports.FetchVideoByte(g.fetchAddr & VideoAddrMask)
	if g.hven {
		g.fetchAddr = (g.fetchAddr &^ 0xff) | ((g.fetchAddr + 1) & 0xff)
	} else {
		g.fetchAddr = (g.fetchAddr + 1) & VideoAddrMask
	}
	return b
}

// writeRun writes n copies of a palette index at the cursor.
func (g *GIME) writeRun(index uint8, n int) {
	for i := 0; i < n; i++ {
		g.pixels[g.beamPos] = index
		g.beamPos++
	}
}

// writePixel writes one source pixel, replicated to the configured
// horizontal resolution.
func (g *GIME) writePixel(index uint8) {
	g.writeRun(index, g.rep)
}

// renderBitmapCell renders one fetched byte in the bitmap modes: eight,
// four or two pixels depending on the colour depth.
func (g *GIME) renderBitmapCell() {
	b := g.fetchNext()

	switch g.bpp {
	case 1:
		for shift := 7; shift >= 0; shift-- {
			g.writePixel(g.palette[(b>>uint(shift))&0x01])
		}
	case 2:
		for shift := 6; shift >= 0; shift -= 2 {
			g.writePixel(g.palette[(b>>uint(shift))&0x03])
		}
	case 4:
		g.writePixel(g.palette[(b>>4)&0x0f])
		g.writePixel(g.palette[b&0x0f])
	}
}

// renderTextCell renders one character cell: a character byte and,
// optionally, an attribute byte with foreground/background colour, blink
// and underline.
func (g *GIME) renderTextCell() {
	ch := g.fetchNext()

	fg := g.palette[1]
	bg := g.palette[0]
	underline := false

	if g.cellBytes == 2 {
		attr := g.fetchNext()
		fg = g.palette[8+(attr>>3)&0x07]
		bg = g.palette[attr&0x07]
		if attr&attrBlink != 0 && g.blink {
			fg = bg
		}
		underline = attr&attrUnderline != 0
	}

	var bits uint8
	if underline && g.linesPerRow > 0 && g.row == g.linesPerRow-1 {
		bits = 0xff
	} else {
		bits = glyphRow(ch, g.row)
	}

	for shift := 7; shift >= 0; shift-- {
		if (bits>>uint(shift))&0x01 == 0x01 {
			g.writePixel(fg)
		} else {
			g.writePixel(bg)
		}
	}
}

// renderLegacyTextCell renders one cell of the legacy alphanumeric mode,
// including the semigraphics elements selected by the top bit of the
// character byte.
func (g *GIME) renderLegacyTextCell() {
	ch := g.fetchNext()
	css := (g.vdgMode >> 3) & 0x01

	if ch&0x80 == 0x80 {
		// semigraphics: four luminance quadrants per cell, colour from
		// bits 4-6
		col := g.palette[(ch>>4)&0x07]
		bg := g.palette[compatPaper]

		var left, right uint8
		if g.row < compatTextRowHeight/2 {
			left = (ch >> 3) & 0x01
			right = (ch >> 2) & 0x01
		} else {
			left = (ch >> 1) & 0x01
			right = ch & 0x01
		}

		half := [2]uint8{left, right}
		for i := 0; i < 2; i++ {
			v := bg
			if half[i] == 0x01 {
				v = col
			}
			for p := 0; p < 4; p++ {
				g.writePixel(v)
			}
		}
		return
	}

	fg := g.palette[compatInk]
	bg := g.palette[compatPaper]
	if css == 0x01 {
		fg = g.palette[compatInkAlt]
		bg = g.palette[compatPaperAlt]
	}

	// inverse video
	if ch&0x40 == 0x40 {
		fg, bg = bg, fg
	}

	// the glyph sits in the middle of the twelve line character row
	var bits uint8
	if r := g.row - 2; r >= 0 && r < 8 {
		bits = glyphRow(ch, r)
	}

	for shift := 7; shift >= 0; shift-- {
		if (bits>>uint(shift))&0x01 == 0x01 {
			g.writePixel(fg)
		} else {
			g.writePixel(bg)
		}
	}
}

// renderLegacyGraphicsCell renders one fetched byte of the legacy colour
// graphics mode: four pixels of two bits, colour set selected by the
// external video mode register.
func (g *GIME) renderLegacyGraphicsCell() {
	b := g.fetchNext()
	css := (g.vdgMode >> 3) & 0x01

	for shift := 6; shift >= 0; shift -= 2 {
		v := (b >> uint(shift)) & 0x03
		g.writePixel(g.palette[css<<2|v])
	}
}
