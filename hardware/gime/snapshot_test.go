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

	"github.com/colourclash/gophercoco/digest"
	"github.com/colourclash/gophercoco/hardware/gime"
	"github.com/colourclash/gophercoco/test"
)

// busyChip returns a chip in the middle of a field with the renderer,
// timer and interrupt machinery all in motion.
func busyChip(variant gime.Variant) *testChip {
	tc := newTestChip(variant)
	pokeBitmap16(tc)

	tc.poke(gime.AddrRegisters+0x0, 0x20)
	tc.poke(gime.AddrRegisters+0x2, gime.IntTimer|gime.IntHBorder)
	tc.poke(gime.AddrRegisters+0x1, 0x20)
	tc.poke(gime.AddrRegisters+0x4, 0x02)
	tc.poke(gime.AddrRegisters+0x5, 0x57)

	for i := range tc.ports.ram {
		tc.ports.ram[i] = uint8(i*7 + 3)
	}

	tc.runLines(100)
	return tc
}

// lineDigest folds every captured scanline into a chained hash.
func lineDigest(p *testPorts) string {
	dig := digest.NewScanline()
	for _, l := range p.lines {
		dig.WriteLine(l)
	}
	return dig.Hash()
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := busyChip(gime.Variant1987)
	data := a.chip.Snapshot()

	// the restored chip runs on its own clock, at an unrelated tick
	b := newTestChip(gime.Variant1987)
	b.ports.ram = a.ports.ram
	b.clk.Advance(12345)
	err := b.chip.Restore(data)
	test.ExpectedSuccess(t, err)

	// both emulations must now produce bit identical scanlines
	a.ports.lines = nil
	b.ports.lines = nil
	a.runLines(400)
	b.runLines(400)

	test.Equate(t, len(b.ports.lines), len(a.ports.lines))
	test.Equate(t, lineDigest(b.ports), lineDigest(a.ports))

	test.Equate(t, b.chip.FieldCount(), a.chip.FieldCount())
	test.Equate(t, b.chip.IRQ(), a.chip.IRQ())
	test.Equate(t, b.chip.Blink(), a.chip.Blink())
}

func TestSnapshotMidLineRoundTrip(t *testing.T) {
	a := busyChip(gime.Variant1986)

	// part way into an active line. the border write carries the reset
	// value so it changes nothing, but it forces a partial render and
	// leaves the beam counters mid-line at the point of capture
	a.runTicks(448)
	a.poke(gime.AddrRegisters+0xa, 0x00)
	data := a.chip.Snapshot()

	b := newTestChip(gime.Variant1986)
	b.ports.ram = a.ports.ram
	b.clk.Advance(98765)
	err := b.chip.Restore(data)
	test.ExpectedSuccess(t, err)

	// finish the interrupted line on both chips, then run well past a
	// field boundary
	a.ports.lines = nil
	b.ports.lines = nil
	a.runTicks(gime.TicksPerScanline - 448)
	b.runTicks(gime.TicksPerScanline - 448)
	a.runLines(300)
	b.runLines(300)

	test.Equate(t, len(a.ports.lines) > 0, true)
	test.Equate(t, len(b.ports.lines), len(a.ports.lines))
	test.Equate(t, lineDigest(b.ports), lineDigest(a.ports))
	test.Equate(t, b.chip.FieldCount(), a.chip.FieldCount())
	test.Equate(t, b.chip.IRQ(), a.chip.IRQ())
}

func TestSaveStateRoundTrip(t *testing.T) {
	a := busyChip(gime.Variant1986)
	data := a.chip.SaveState()

	b := newTestChip(gime.Variant1986)
	b.ports.ram = a.ports.ram
	err := b.chip.RestoreState(data)
	test.ExpectedSuccess(t, err)

	sa, la := a.chip.VideoState()
	sb, lb := b.chip.VideoState()
	test.Equate(t, sb == sa, true)
	test.Equate(t, lb, la)
	test.Equate(t, b.chip.FieldCount(), a.chip.FieldCount())

	a.ports.lines = nil
	b.ports.lines = nil
	a.runLines(50)
	b.runLines(50)
	test.Equate(t, lineDigest(b.ports), lineDigest(a.ports))
}

func TestRestoreGarbage(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	err := tc.chip.RestoreState([]byte{0x01, 0x02, 0x03})
	test.ExpectedFailure(t, err)
}
