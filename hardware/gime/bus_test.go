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

func TestDirectMap(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	// without the MMU the lower half of the CPU map is the top of
	// physical memory
	ac := tc.chip.MemCycle(true, 0x0123, 0)
	test.Equate(t, ac.Class == gime.ClassRAM, true)
	test.Equate(t, ac.Address, uint32(0x38)<<13|0x0123)

	ac = tc.chip.MemCycle(true, 0x7fff, 0)
	test.Equate(t, ac.Class == gime.ClassRAM, true)
	test.Equate(t, ac.Address, uint32(0x3b)<<13|0x1fff)

	// the upper half reads through to ROM in the power-on map type
	ac = tc.chip.MemCycle(true, 0x9000, 0)
	test.Equate(t, ac.Class == gime.ClassROM, true)
	test.Equate(t, ac.Address, uint32(0x1000))
}

func TestRAMMapType(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	// setting the SAM map type bit exposes RAM across the whole map
	tc.poke(gime.AddrSAM+0x1f, 0)

	ac := tc.chip.MemCycle(true, 0x9000, 0)
	test.Equate(t, ac.Class == gime.ClassRAM, true)
	test.Equate(t, ac.Address, uint32(0x3c)<<13|0x1000)

	// and the even address of the pair clears it again
	tc.poke(gime.AddrSAM+0x1e, 0)
	ac = tc.chip.MemCycle(true, 0x9000, 0)
	test.Equate(t, ac.Class == gime.ClassROM, true)
}

func TestMMUMapping(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	tc.poke(gime.AddrRegisters+0x0, 0x40)
	tc.poke(gime.AddrMMU+2, 0x05)

	ac := tc.chip.MemCycle(true, 0x4123, 0)
	test.Equate(t, ac.Class == gime.ClassRAM, true)
	test.Equate(t, ac.Address, uint32(0x05)<<13|0x0123)

	// bank selectors hold six bits
	tc.poke(gime.AddrMMU+2, 0xff)
	ac = tc.chip.MemCycle(true, 0x4123, 0)
	test.Equate(t, ac.Address, uint32(0x3f)<<13|0x0123)
}

func TestMMUTaskSwitch(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	tc.poke(gime.AddrRegisters+0x0, 0x40)
	tc.poke(gime.AddrMMU+2, 0x05)
	tc.poke(gime.AddrMMU+8+2, 0x21)

	ac := tc.chip.MemCycle(true, 0x4123, 0)
	test.Equate(t, ac.Address, uint32(0x05)<<13|0x0123)

	// the task bit selects the second selector bank
	tc.poke(gime.AddrRegisters+0x1, 0x01)
	ac = tc.chip.MemCycle(true, 0x4123, 0)
	test.Equate(t, ac.Address, uint32(0x21)<<13|0x0123)
}

func TestVectorRAM(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	// vector page reads through to ROM at power on
	ac := tc.chip.MemCycle(true, 0xfe10, 0)
	test.Equate(t, ac.Class == gime.ClassROM, true)

	// pinned to the top of physical memory when enabled, whatever the MMU
	// says
	tc.poke(gime.AddrRegisters+0x0, 0x48)
	ac = tc.chip.MemCycle(true, 0xfe10, 0)
	test.Equate(t, ac.Class == gime.ClassRAM, true)
	test.Equate(t, ac.Address, uint32(0x3f)<<13|0x1e10)
}

func TestInterruptVectors(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	ac := tc.chip.MemCycle(true, 0xfff2, 0)
	test.Equate(t, ac.Class == gime.ClassROM, true)
	test.Equate(t, ac.Address, uint32(0x7ff2))
}

func TestOpenBus(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	ac := tc.chip.MemCycle(true, 0xffe5, 0)
	test.Equate(t, ac.Class == gime.ClassOpenBus, true)
	test.Equate(t, ac.Data, gime.OpenBusValue)

	// most of the register file is write-only
	test.Equate(t, tc.peek(gime.AddrRegisters+0x8), gime.OpenBusValue)
}

func TestBusCost(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	ac := tc.chip.MemCycle(true, 0x1000, 0)
	test.Equate(t, ac.Cost, gime.BusCycleSlow)
	test.Equate(t, tc.ports.lastCost, gime.BusCycleSlow)

	// the SAM rate bit selects the fast bus
	tc.poke(gime.AddrSAM+0x19, 0)
	ac = tc.chip.MemCycle(true, 0x1000, 0)
	test.Equate(t, ac.Cost, gime.BusCycleFast)
	test.Equate(t, tc.ports.lastCost, gime.BusCycleFast)
}

func TestExternalDeviceBlock(t *testing.T) {
	tc := newTestChip(gime.Variant1986)

	// addresses below the chip's own registers belong to external
	// devices. the chip claims the cycle only as far as the chip select
	ac := tc.chip.MemCycle(true, 0xff00, 0)
	test.Equate(t, ac.Class == gime.ClassRegister, true)
	test.Equate(t, ac.Data, gime.OpenBusValue)
}
