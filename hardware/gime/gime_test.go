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
	"github.com/colourclash/gophercoco/hardware/clock"
	"github.com/colourclash/gophercoco/hardware/gime"
	"github.com/colourclash/gophercoco/hardware/scheduler"
)

// testPorts records everything the chip sends outward and serves video
// fetches from a plain RAM array.
type testPorts struct {
	ram [0x20000]uint8

	lines   [][]uint8
	inverts []bool

	hsyncEdges []bool
	fsyncEdges []bool

	lastCost int
}

func (p *testPorts) FetchVideoByte(address uint32) uint8 {
	return p.ram[address&gime.VideoAddrMask]
}

func (p *testPorts) SignalHSync(level bool) {
	p.hsyncEdges = append(p.hsyncEdges, level)
}

func (p *testPorts) SignalFSync(level bool) {
	p.fsyncEdges = append(p.fsyncEdges, level)
}

func (p *testPorts) RenderLine(pixels []uint8, invertPhase bool) {
	cp := make([]uint8, len(pixels))
	copy(cp, pixels)
	p.lines = append(p.lines, cp)
	p.inverts = append(p.inverts, invertPhase)
}

func (p *testPorts) CPUBusCycle(cost int, _ bool, _ uint16) {
	p.lastCost = cost
}

type testChip struct {
	clk   *clock.Clock
	sched *scheduler.Queue
	ports *testPorts
	chip  *gime.GIME
}

func newTestChip(variant gime.Variant) *testChip {
	tc := &testChip{
		clk:   &clock.Clock{},
		ports: &testPorts{},
	}
	tc.sched = scheduler.NewQueue(tc.clk)
	tc.chip = gime.NewGIME(variant, tc.clk, tc.sched, tc.ports)
	return tc
}

// runLines advances the clock one full scanline at a time, servicing due
// events after each advance.
func (tc *testChip) runLines(n int) {
	for i := 0; i < n; i++ {
		tc.clk.Advance(gime.TicksPerScanline)
		tc.sched.RunDue()
	}
}

// runTicks advances the clock one tick at a time.
func (tc *testChip) runTicks(n int) {
	for i := 0; i < n; i++ {
		tc.clk.Advance(1)
		tc.sched.RunDue()
	}
}

// poke writes a value to a chip register through the bus interface.
func (tc *testChip) poke(addr uint16, data uint8) {
	tc.chip.MemCycle(false, addr, data)
}

// peek reads a chip register through the bus interface.
func (tc *testChip) peek(addr uint16) uint8 {
	return tc.chip.MemCycle(true, addr, 0).Data
}

// linesToActiveArea is the number of scanlines from reset to the first
// line of the active area with the power-on register file.
const linesToActiveArea = 38
