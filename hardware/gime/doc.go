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

// Package gime emulates the GIME, the custom video and memory management
// chip of the Tandy Color Computer 3. The chip is responsible for a lot of
// the machine: address decoding and the MMU, the video timing chain, the
// scanline renderer, the programmable timer and both interrupt outputs.
//
// The emulation is cycle accurate and entirely event driven. Every timing
// transition in the chip is a self rescheduling event on the scheduler
// queue shared with the rest of the machine. The chip never polls; the
// machine's outer loop alternates between executing CPU instructions and
// running due events.
//
// Rendering is incremental. A register write that would recolour pixels
// already put out on the current scanline first forces the renderer to
// catch up with the beam position, so configuration changes never take
// effect retroactively. The renderer's cursor is resumable and idempotent:
// repeated partial renders never duplicate or skip a pixel.
//
// The chip knows nothing about presentation. Completed scanlines of palette
// indices, sync edges and bus pacing information all leave through the
// narrow Ports interface.
//
// Several constants in this package are empirically reverse engineered
// hardware quirks (the early vsync wrap, the 50Hz border allowance and
// others). The associated tests are hardware characterisation; the numbers
// are not derived from anything and must not be "corrected".
package gime
