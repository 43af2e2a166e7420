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

// Package scheduler is the discrete event queue that drives every time
// based hardware simulation in the emulation.
//
// The outer machine loop alternates between advancing the shared clock (by
// executing CPU instructions) and calling RunDue() on the queue. Every
// timing transition in the emulated hardware is a self rescheduling event:
// the payload mutates its component's state and re-arms the event for its
// next due tick before returning.
//
// Everything is strictly single threaded and run to completion. An event's
// payload is invoked only after the event has been unlinked from the queue
// so there is no reentrancy hazard when a payload reschedules itself.
package scheduler
