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

// Package clock defines the tick counter that every timed component in the
// emulation shares. A Tick is one cycle of the master crystal. The counter
// wraps and so ticks must never be compared directly. Use the Delta()
// function, which is safe across the wrap boundary.
//
// A Clock instance is created once per machine and passed by reference into
// the scheduler and into every component that needs to know the current
// time. There is deliberately no package level clock.
package clock

import "fmt"

// Tick is the unit of emulated time. The counter wraps.
type Tick uint32

// Delta returns the number of ticks between b and a. The result is negative
// if a is chronologically before b. Correct even when the tick counter has
// wrapped between the two measurements, provided they are within half the
// counter range of each other.
func Delta(a, b Tick) int32 {
	return int32(a - b)
}

// AtOrAfter returns true if tick a is at the same time as, or later than,
// tick b.
func AtOrAfter(a, b Tick) bool {
	return Delta(a, b) >= 0
}

// Clock is the current time of the emulation. It is shared by reference
// between the scheduler and every timed component.
type Clock struct {
	Current Tick
}

func (c *Clock) String() string {
	return fmt.Sprintf("tick: %d", c.Current)
}

// Advance moves the clock forward by the given number of ticks.
func (c *Clock) Advance(ticks int) {
	c.Current += Tick(ticks)
}
