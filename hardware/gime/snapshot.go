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
	"github.com/colourclash/gophercoco/crunched"
	"github.com/colourclash/gophercoco/curated"
	"github.com/colourclash/gophercoco/hardware/clock"
	"github.com/colourclash/gophercoco/hardware/scheduler"
	"github.com/colourclash/gophercoco/logger"
	"github.com/colourclash/gophercoco/snapshot"
)

// ErrSnapshot is the pattern for errors from the snapshot surface.
const ErrSnapshot = "gime: %v"

// Field tags for the chip's snapshot record. The pixel buffer and the
// transient beam position counters are deliberately absent: they are
// rebuilt at the next line start.
//
// A pending event serialises as the delta from the tick of capture to its
// due tick. Absence of an event tag means the event was not queued.
const (
	tagRegs uint8 = iota + 1
	tagMMU
	tagPalette
	tagBorder
	tagSAMBits
	tagVDGMode
	tagExtBank
	tagVState
	tagScanline
	tagFieldLine
	tagActiveLine
	tagRow
	tagInActive
	tagVideoBase
	tagLineAddr
	tagLineStart
	tagFieldCount
	tagBlink
	tagTimerCounter
	tagIRQLatch
	tagFIRQLatch
	tagExternalLines
)

// event tags. kept clear of the field tags above so either block can grow
const (
	tagEvHSyncFall uint8 = iota + 32
	tagEvHSyncRise
	tagEvBorder
	tagEvFSyncFall
	tagEvFSyncRise
	tagEvTimer
)

// Snapshot serialises the chip into a tagged binary record. Restoring the
// record into a fresh chip reproduces bit identical behaviour from the
// point of capture.
func (g *GIME) Snapshot() []byte {
	w := snapshot.NewWriter()

	w.Bytes(tagRegs, g.regs[:])
	w.Bytes(tagMMU, g.mmu[:])
	w.Bytes(tagPalette, g.palette[:])
	w.Uint8(tagBorder, g.border)
	w.Uint16(tagSAMBits, g.samBits)
	w.Uint8(tagVDGMode, g.vdgMode)
	w.Uint8(tagExtBank, g.extBank)

	w.Uint8(tagVState, uint8(g.vstate))
	w.Uint16(tagScanline, uint16(g.scanline))
	w.Uint16(tagFieldLine, uint16(g.fieldLine))
	w.Uint16(tagActiveLine, uint16(g.activeLine))
	w.Uint8(tagRow, uint8(g.row))
	w.Bool(tagInActive, g.inActive)
	w.Uint32(tagVideoBase, g.videoBase)
	w.Uint32(tagLineAddr, g.lineAddr)
	w.Int32(tagLineStart, clock.Delta(g.lineStart, g.clk.Current))
	w.Uint32(tagFieldCount, uint32(g.fieldCount))

	w.Bool(tagBlink, g.blink)
	w.Int32(tagTimerCounter, g.timerCounter)
	w.Uint8(tagIRQLatch, g.irqLatch)
	w.Uint8(tagFIRQLatch, g.firqLatch)
	w.Uint8(tagExternalLines, g.externalLines)

	writeEvent := func(tag uint8, ev *scheduler.Event) {
		if ev.IsQueued() {
			w.Int32(tag, clock.Delta(ev.At, g.clk.Current))
		}
	}
	writeEvent(tagEvHSyncFall, &g.evHSyncFall)
	writeEvent(tagEvHSyncRise, &g.evHSyncRise)
	writeEvent(tagEvBorder, &g.evBorder)
	writeEvent(tagEvFSyncFall, &g.evFSyncFall)
	writeEvent(tagEvFSyncRise, &g.evFSyncRise)
	writeEvent(tagEvTimer, &g.evTimer)

	return w.End()
}

// Restore replaces the chip's state with the contents of a record produced
// by Snapshot(). Pending events are requeued relative to the current tick,
// which need not be the tick at which the record was captured.
func (g *GIME) Restore(data []byte) error {
	g.sched.Cancel(&g.evHSyncFall)
	g.sched.Cancel(&g.evHSyncRise)
	g.sched.Cancel(&g.evBorder)
	g.sched.Cancel(&g.evFSyncFall)
	g.sched.Cancel(&g.evFSyncRise)
	g.sched.Cancel(&g.evTimer)

	requeue := func(ev *scheduler.Event, delta int32) {
		g.sched.ScheduleAt(ev, g.clk.Current+clock.Tick(delta))
	}

	r := snapshot.NewReader(data)
	for tag, ok := r.Next(); ok; tag, ok = r.Next() {
		switch tag {
		case tagRegs:
			copy(g.regs[:], r.Bytes())
		case tagMMU:
			copy(g.mmu[:], r.Bytes())
		case tagPalette:
			copy(g.palette[:], r.Bytes())
		case tagBorder:
			g.border = r.Uint8()
		case tagSAMBits:
			g.samBits = r.Uint16()
		case tagVDGMode:
			g.vdgMode = r.Uint8()
		case tagExtBank:
			g.extBank = r.Uint8()

		case tagVState:
			g.vstate = VState(r.Uint8())
		case tagScanline:
			g.scanline = int(r.Uint16())
		case tagFieldLine:
			g.fieldLine = int(r.Uint16())
		case tagActiveLine:
			g.activeLine = int(r.Uint16())
		case tagRow:
			g.row = int(r.Uint8())
		case tagInActive:
			g.inActive = r.Bool()
		case tagVideoBase:
			g.videoBase = r.Uint32()
		case tagLineAddr:
			g.lineAddr = r.Uint32()
		case tagLineStart:
			g.lineStart = g.clk.Current + clock.Tick(r.Int32())
		case tagFieldCount:
			g.fieldCount = int(r.Uint32())

		case tagBlink:
			g.blink = r.Bool()
		case tagTimerCounter:
			g.timerCounter = r.Int32()
		case tagIRQLatch:
			g.irqLatch = r.Uint8()
		case tagFIRQLatch:
			g.firqLatch = r.Uint8()
		case tagExternalLines:
			g.externalLines = r.Uint8()

		case tagEvHSyncFall:
			requeue(&g.evHSyncFall, r.Int32())
		case tagEvHSyncRise:
			requeue(&g.evHSyncRise, r.Int32())
		case tagEvBorder:
			requeue(&g.evBorder, r.Int32())
		case tagEvFSyncFall:
			requeue(&g.evFSyncFall, r.Int32())
		case tagEvFSyncRise:
			requeue(&g.evFSyncRise, r.Int32())
		case tagEvTimer:
			requeue(&g.evTimer, r.Int32())

		default:
			// a tag from a newer revision of the record. the field has
			// already been stepped over
			logger.Logf("gime", "snapshot: ignoring unknown tag %d", tag)
		}
	}

	if err := r.Err(); err != nil {
		return curated.Errorf(ErrSnapshot, err)
	}

	g.updateDerived()
	g.recomputeInterrupts()
	g.resetLinePhase()

	return nil
}

// SaveState is Snapshot() with the record compressed for storage.
func (g *GIME) SaveState() []byte {
	return crunched.Crunch(g.Snapshot())
}

// RestoreState is the counterpart of SaveState().
func (g *GIME) RestoreState(data []byte) error {
	u, err := crunched.Uncrunch(data)
	if err != nil {
		return curated.Errorf(ErrSnapshot, err)
	}
	return g.Restore(u)
}
