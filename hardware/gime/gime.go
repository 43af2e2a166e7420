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
	"fmt"

	"github.com/colourclash/gophercoco/hardware/clock"
	"github.com/colourclash/gophercoco/hardware/scheduler"
)

// Variant distinguishes the two revisions of the chip. The revisions differ
// in small but observable ways, most notably the offset applied to the
// timer on reload.
type Variant int

// The two chip revisions.
const (
	Variant1986 Variant = iota
	Variant1987
)

func (v Variant) String() string {
	switch v {
	case Variant1986:
		return "1986 GIME"
	case Variant1987:
		return "1987 GIME"
	}
	return "unknown GIME"
}

// Ports is the narrow interface connecting the chip to the rest of the
// machine. The chip calls outward through Ports; nothing behind it is
// allowed to call back into the chip during one of these calls.
type Ports interface {
	// FetchVideoByte reads one byte of video memory. The address is already
	// bank and offset resolved by the chip.
	FetchVideoByte(address uint32) uint8

	// SignalHSync and SignalFSync are edge notifications to the display
	// pipeline. Level is true for the rising edge.
	SignalHSync(level bool)
	SignalFSync(level bool)

	// RenderLine hands off one completed scanline of palette indices. The
	// slice is reused by the chip; the receiver must copy anything it wants
	// to keep. Called at most once per scanline, and not at all for border
	// and blanking lines.
	RenderLine(pixels []uint8, invertPhase bool)

	// CPUBusCycle reports the number of ticks consumed by one CPU bus
	// cycle, so the driving CPU can pace execution. The cost is one of two
	// fixed values, selected by the clock rate register.
	CPUBusCycle(cost int, read bool, address uint16)
}

// StubPorts is a no-op implementation of the Ports interface. Useful as an
// embeddable base for tests and for headless performance measurement.
type StubPorts struct{}

// FetchVideoByte implements the Ports interface.
func (StubPorts) FetchVideoByte(_ uint32) uint8 { return 0 }

// SignalHSync implements the Ports interface.
func (StubPorts) SignalHSync(_ bool) {}

// SignalFSync implements the Ports interface.
func (StubPorts) SignalFSync(_ bool) {}

// RenderLine implements the Ports interface.
func (StubPorts) RenderLine(_ []uint8, _ bool) {}

// CPUBusCycle implements the Ports interface.
func (StubPorts) CPUBusCycle(_ int, _ bool, _ uint16) {}

// GIME is the video/memory management chip. Create with NewGIME().
//
// The chip exclusively owns its register file, video state and scheduled
// events. It borrows the scheduler queue and the Ports implementation.
type GIME struct {
	variant Variant
	clk     *clock.Clock
	sched   *scheduler.Queue
	ports   Ports

	// the register file. raw bytes as written; anything derived from them
	// is recomputed synchronously by updateDerived()
	regs    [16]uint8
	mmu     [16]uint8
	palette [16]uint8
	border  uint8
	samBits uint16
	vdgMode uint8
	extBank uint8

	// values derived from the register file
	compat        bool
	mmuEnabled    bool
	taskOffset    int
	vectorRAM     bool
	romMap        uint8
	irqEnabled    bool
	firqEnabled   bool
	irqEnable     uint8
	firqEnable    uint8
	timerFast     bool
	bitmap        bool
	burstInvert   bool
	fieldRate50   bool
	legacyGfx     bool
	linesPerRow   int
	nAA           int
	nTB           int
	fieldDuration int
	suppressLines int
	cellsPerRow   int
	cellBytes     int
	bpp           int
	rep           int
	cellWidth     int
	activePad     int
	rowStride     uint32
	hven          bool
	xOffset       uint32
	vScroll       int
	borderOffset  int
	busCost       int

	// video state
	vstate     VState
	scanline   int
	fieldLine  int
	activeLine int
	row        int
	inActive   bool
	videoBase  uint32
	lineAddr   uint32
	lineStart  clock.Tick
	fieldCount int

	// renderer state. the pixel buffer and beam position counters are
	// transient and are not serialised
	beamPos        int
	leftRemaining  int
	activeCells    int
	padRemaining   int
	rightRemaining int
	fetchAddr      uint32
	pixels         [LineWidth + overscanSlack]uint8

	// timer and interrupt state
	blink         bool
	timerCounter  int32
	irqLatch      uint8
	firqLatch     uint8
	externalLines uint8
	irqOut        bool
	firqOut       bool

	// the chip's scheduled events. created once, requeued for the life of
	// the chip
	evHSyncFall scheduler.Event
	evHSyncRise scheduler.Event
	evBorder    scheduler.Event
	evFSyncFall scheduler.Event
	evFSyncRise scheduler.Event
	evTimer     scheduler.Event
}

// NewGIME is the preferred method of initialisation for the GIME type. The
// clock and scheduler queue are shared with the rest of the machine.
func NewGIME(variant Variant, clk *clock.Clock, sched *scheduler.Queue, ports Ports) *GIME {
	g := &GIME{
		variant: variant,
		clk:     clk,
		sched:   sched,
		ports:   ports,
	}

	g.evHSyncFall = scheduler.Event{Label: "hsync fall", Run: g.hsyncFall}
	g.evHSyncRise = scheduler.Event{Label: "hsync rise", Run: g.hsyncRise}
	g.evBorder = scheduler.Event{Label: "hsync border", Run: g.borderPoint}
	g.evFSyncFall = scheduler.Event{Label: "fsync fall", Run: g.fsyncFall}
	g.evFSyncRise = scheduler.Event{Label: "fsync rise", Run: g.fsyncRise}
	g.evTimer = scheduler.Event{Label: "timer", Run: g.timerExpire}

	g.Reset()

	return g
}

func (g *GIME) String() string {
	return fmt.Sprintf("%s: %s scanline=%d field line=%d row=%d", g.variant, g.vstate, g.scanline, g.fieldLine, g.row)
}

// Reset the chip to its power-on state and begin the timing chain. Pending
// events belonging to the chip are cancelled first, so Reset() can be used
// at any point in the chip's life.
func (g *GIME) Reset() {
	g.sched.Cancel(&g.evHSyncFall)
	g.sched.Cancel(&g.evHSyncRise)
	g.sched.Cancel(&g.evBorder)
	g.sched.Cancel(&g.evFSyncFall)
	g.sched.Cancel(&g.evFSyncRise)
	g.sched.Cancel(&g.evTimer)

	g.regs = [16]uint8{}
	g.mmu = [16]uint8{}
	g.palette = [16]uint8{}
	g.border = 0
	g.samBits = 0
	g.vdgMode = 0

	g.vstate = StateVBlank
	g.scanline = 0
	g.fieldLine = 0
	g.activeLine = 0
	g.row = 0
	g.inActive = false
	g.videoBase = 0
	g.lineAddr = 0
	g.fieldCount = 0

	g.blink = false
	g.timerCounter = 0
	g.irqLatch = 0
	g.firqLatch = 0
	g.externalLines = 0

	g.updateDerived()
	g.recomputeInterrupts()
	g.resetLinePhase()

	// everything else in the timing chain cascades from the first hsync
	// fall
	g.lineStart = g.clk.Current
	g.sched.ScheduleAt(&g.evHSyncFall, g.clk.Current+TicksPerScanline)
}

// SetExternalBankRegister receives the companion chip's bank bits. They
// contribute the top bit of the video address in the legacy compatibility
// modes.
func (g *GIME) SetExternalBankRegister(value uint8) {
	g.flushRender()
	g.extBank = value
}

// SetExternalLine asserts or releases one of the chip's external interrupt
// lines. The mask is one of IntSerial, IntKeyboard or IntCart. Held lines
// are folded into the interrupt latches on every bus cycle.
func (g *GIME) SetExternalLine(mask uint8, level bool) {
	mask &= IntSerial | IntKeyboard | IntCart
	if level {
		g.externalLines |= mask
	} else {
		g.externalLines &^= mask
	}
}

// IRQ returns the current level of the chip's IRQ output.
func (g *GIME) IRQ() bool {
	return g.irqOut
}

// FIRQ returns the current level of the chip's FIRQ output.
func (g *GIME) FIRQ() bool {
	return g.firqOut
}

// Blink returns the current state of the text attribute blink flip-flop.
// Exposed for testing; rendering uses it internally.
func (g *GIME) Blink() bool {
	return g.blink
}

// VideoState returns the current vertical state and the number of scanlines
// since that state was entered.
func (g *GIME) VideoState() (VState, int) {
	return g.vstate, g.scanline
}

// FieldCount returns the number of complete fields since reset.
func (g *GIME) FieldCount() int {
	return g.fieldCount
}
