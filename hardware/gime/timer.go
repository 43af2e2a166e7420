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

// Interrupt source bits, shared by the enable registers and the pending
// latches.
const (
	IntTimer    = uint8(0x20)
	IntHBorder  = uint8(0x10)
	IntVBorder  = uint8(0x08)
	IntSerial   = uint8(0x04)
	IntKeyboard = uint8(0x02)
	IntCart     = uint8(0x01)
)

// master ticks per timer count when the fast clock source is selected.
const timerFastTickDiv = 8

// the value loaded into the counter is the programmed value plus a small
// offset that differs between the chip revisions.
const (
	timerOffset1986 = 1
	timerOffset1987 = 2
)

func (g *GIME) timerOffset() int32 {
	if g.variant == Variant1987 {
		return timerOffset1987
	}
	return timerOffset1986
}

// timerProgrammed returns the raw 12 bit value from the two timer
// registers. Zero means the timer is stopped.
func (g *GIME) timerProgrammed() int32 {
	return int32(g.regs[regTimerH]&0x0f)<<8 | int32(g.regs[regTimerL])
}

// timerReload restarts the countdown from the programmed value. Called on
// a write to either timer register.
func (g *GIME) timerReload() {
	g.sched.Cancel(&g.evTimer)

	v := g.timerProgrammed()
	if v == 0 {
		g.timerCounter = 0
		return
	}

	g.timerCounter = v + g.timerOffset()

	if g.timerFast {
		// the fast clock is not stepped count by count. the expiry tick is
		// computed up front and the event does the rest
		g.sched.ScheduleAt(&g.evTimer, g.clk.Current+clock.Tick(g.timerCounter*timerFastTickDiv))
	}
}

// timerSourceChanged re-arms the countdown after the clock source bit has
// been rewritten. The hardware restarts from the programmed value rather
// than carrying the count across.
func (g *GIME) timerSourceChanged() {
	g.timerReload()
}

// timerTickSlow is one count of the slow clock source, driven from the
// horizontal border event.
func (g *GIME) timerTickSlow() {
	if g.timerCounter <= 0 {
		return
	}
	g.timerCounter--
	if g.timerCounter == 0 {
		g.timerExpire()
	}
}

// timerExpire is the countdown reaching zero, from either clock source.
// The blink flip-flop toggles, the timer interrupt asserts once, and the
// countdown restarts.
func (g *GIME) timerExpire() {
	g.blink = !g.blink
	g.raiseSource(IntTimer)

	v := g.timerProgrammed()
	if v == 0 {
		g.timerCounter = 0
		return
	}
	g.timerCounter = v + g.timerOffset()

	if g.timerFast {
		// reschedule from the event's own due tick so the period does not
		// drift
		g.sched.ScheduleAt(&g.evTimer, g.evTimer.At+clock.Tick(g.timerCounter*timerFastTickDiv))
	}
}

// raiseSource latches an interrupt source. A source is latched only when
// its enable bit is set; the latch survives the enable being cleared
// afterwards.
func (g *GIME) raiseSource(src uint8) {
	if g.irqEnable&src != 0 {
		g.irqLatch |= src
	}
	if g.firqEnable&src != 0 {
		g.firqLatch |= src
	}
	g.recomputeInterrupts()
}

// latchExternalLines folds the held external interrupt lines into the
// latches. Called once per bus cycle.
func (g *GIME) latchExternalLines() {
	if g.externalLines == 0 {
		return
	}
	g.irqLatch |= g.externalLines & g.irqEnable
	g.firqLatch |= g.externalLines & g.firqEnable
	g.recomputeInterrupts()
}

// recomputeInterrupts refreshes the two interrupt outputs. Called after
// every change that can contribute to them.
func (g *GIME) recomputeInterrupts() {
	g.irqOut = g.irqEnabled && g.irqLatch != 0
	g.firqOut = g.firqEnabled && g.firqLatch != 0
}
