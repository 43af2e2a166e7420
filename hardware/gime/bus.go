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

// Class is the chip select resolved for one bus cycle.
type Class int

// The chip select classes. There is no error class: an address the chip
// cannot decode resolves to the open bus, matching the hardware's lack of
// any bus fault behaviour.
const (
	ClassOpenBus Class = iota
	ClassRAM
	ClassROM
	ClassRegister
)

func (c Class) String() string {
	switch c {
	case ClassRAM:
		return "RAM"
	case ClassROM:
		return "ROM"
	case ClassRegister:
		return "register"
	}
	return "open bus"
}

// OpenBusValue is the byte seen on a read that no device services.
const OpenBusValue = uint8(0xff)

// The two bus speed classes in master ticks per CPU bus cycle. The slow
// rate is the machine's compatibility speed; the fast rate is selected
// through the SAM compatible rate register.
const (
	BusCycleSlow = 16
	BusCycleFast = 8
)

// VideoAddrMask clips the chip's 17-bit video address counter.
const VideoAddrMask = uint32(0x1ffff)

// pageSize is the granularity of the memory management unit: sixteen
// selectable 8KB windows.
const (
	pageSize  = uint32(0x2000)
	pageShift = 13
)

// without the MMU the CPU sees a fixed map: the top eight pages of
// physical memory
const directMapBase = uint8(0x38)

// Access is the resolution of one bus cycle.
type Access struct {
	Class Class

	// physical offset into RAM or ROM. meaningful for ClassRAM and
	// ClassROM only
	Address uint32

	// Data carries a register read result, or the open bus value. for RAM
	// and ROM classes the caller performs the access itself
	Data uint8

	// ticks consumed by the cycle. also reported via Ports.CPUBusCycle
	Cost int
}

// MemCycle resolves one CPU bus cycle. For a write, data is the byte the
// CPU is driving onto the bus; the chip consumes it for its own register
// blocks and snoops it for a few passively observed addresses. For a read
// of a chip register the result is in the returned Access.
//
// The cycle's cost is reported through Ports.CPUBusCycle before the
// function returns, whatever the address resolves to.
func (g *GIME) MemCycle(read bool, addr uint16, data uint8) Access {
	ac := Access{Class: ClassOpenBus, Data: OpenBusValue, Cost: g.busCost}
	g.ports.CPUBusCycle(ac.Cost, read, addr)

	switch {
	case addr >= 0xff00:
		ac = g.ioCycle(read, addr, data, ac)

	case addr >= 0xfe00 && g.vectorRAM:
		// vector page pinned to the top of physical memory, regardless of
		// the MMU
		ac.Class = ClassRAM
		ac.Address = uint32(0x3f)<<pageShift | uint32(addr&0x1fff)

	case addr >= 0x8000 && g.samBits&samMapType == 0:
		// machine is in the ROM map. the split between internal ROM and
		// cartridge is the ROM map field's business; both resolve to the
		// same chip select here
		ac.Class = ClassROM
		ac.Address = uint32(addr & 0x7fff)

	default:
		ac.Class = ClassRAM
		ac.Address = g.mapRAM(addr)
	}

	// held external interrupt lines fold into the latches every cycle.
	// this happens after the access so a read-clear of a pending register
	// cannot deassert the output while the line is still held
	g.latchExternalLines()

	return ac
}

// mapRAM resolves a CPU address to a physical RAM offset, through the MMU
// when it is enabled.
func (g *GIME) mapRAM(addr uint16) uint32 {
	slot := int(addr >> pageShift)

	var bank uint8
	if g.mmuEnabled {
		bank = g.mmu[g.taskOffset+slot]
	} else {
		bank = directMapBase | uint8(slot)
	}

	return uint32(bank)<<pageShift | uint32(addr&0x1fff)
}

// ioCycle resolves a bus cycle in the I/O page.
func (g *GIME) ioCycle(read bool, addr uint16, data uint8, ac Access) Access {
	switch {
	case addr >= AddrRegisters && addr < AddrSAM+32:
		// the chip's own register blocks
		ac.Class = ClassRegister
		if read {
			ac.Data = g.readRegister(addr)
		} else {
			g.writeRegister(addr, data)
		}

	case addr >= 0xfff0:
		// interrupt vectors read through to ROM
		ac.Class = ClassROM
		ac.Address = uint32(addr & 0x7fff)

	case addr >= 0xffe0:
		// unserviced

	case addr < 0xff90:
		// external device block. not ours, but a few addresses are
		// snooped on the way past
		ac.Class = ClassRegister
		if !read && addr == AddrVDGMode {
			g.snoopVDGMode(data)
		}
	}

	return ac
}
