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

// Package hardware is the base package for the emulated hardware. Its
// sub-packages contain everything required for a headless emulation: the
// master clock, the event scheduler that orders everything the hardware
// does, and the video/memory management chip driven by them.
//
// The driving machine owns the clock. It advances it by the cost of each
// CPU bus cycle and services the scheduler after every advance; the chip
// does the rest through its scheduled events.
package hardware
